package service

import (
	"blogicum/internal/models"
	"blogicum/internal/repository"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	t.Run("Редактируется только свой профиль", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetUserByID", mock.Anything, "u1").
			Return(&models.User{UserID: "u1", Username: "anna", Role: models.RoleUser}, nil)
		userRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.UserID == "u1" && u.Username == "anna_k" && u.FirstName == "Анна"
		})).Return(nil)

		svc := NewUserService(userRepo, testConfig())
		user, err := svc.UpdateProfile(context.Background(), Viewer{UserID: "u1"}, repository.UpdateUserRequest{
			UserID:    "u2",
			Username:  "anna_k",
			FirstName: "Анна",
		})

		require.NoError(t, err)
		assert.Equal(t, "anna_k", user.Username)
		assert.Equal(t, models.RoleUser, user.Role)
		userRepo.AssertExpectations(t)
	})

	t.Run("Аноним", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo, testConfig())

		_, err := svc.UpdateProfile(context.Background(), Viewer{}, repository.UpdateUserRequest{Username: "x"})
		assert.True(t, errors.Is(err, ErrUnauthorized))
		userRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
	})

	t.Run("Имя занято", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetUserByID", mock.Anything, "u1").Return(&models.User{UserID: "u1"}, nil)
		userRepo.On("UpdateUser", mock.Anything, mock.Anything).Return(repository.ErrConflict)

		svc := NewUserService(userRepo, testConfig())
		_, err := svc.UpdateProfile(context.Background(), Viewer{UserID: "u1"}, repository.UpdateUserRequest{Username: "boris"})
		assert.True(t, errors.Is(err, repository.ErrConflict))
	})
}

func TestCurrentUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByID", mock.Anything, "u1").
		Return(&models.User{UserID: "u1", Username: "anna_k"}, nil)

	svc := NewUserService(userRepo, testConfig())

	// the token still carries the name from before the rename
	user, err := svc.CurrentUser(context.Background(), Viewer{UserID: "u1", Username: "anna"})
	require.NoError(t, err)
	assert.Equal(t, "anna_k", user.Username)

	_, err = svc.CurrentUser(context.Background(), Viewer{})
	assert.True(t, errors.Is(err, ErrUnauthorized))
	userRepo.AssertExpectations(t)
}

func TestDeleteUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetUserByUsername", mock.Anything, "anna").Return(&models.User{UserID: "u1"}, nil)
	userRepo.On("DeleteUser", mock.Anything, "u1").Return(nil)
	userRepo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	svc := NewUserService(userRepo, testConfig())

	assert.NoError(t, svc.DeleteUser(context.Background(), "anna"))
	assert.True(t, errors.Is(svc.DeleteUser(context.Background(), "ghost"), ErrNotFound))
	userRepo.AssertExpectations(t)
}

func TestCatalogCategory(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetBySlug", mock.Anything, "travel").
		Return(&models.Category{CategoryID: "c1", Slug: "travel", IsPublished: true}, nil)
	categoryRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *models.Category) bool {
		return c.CategoryID == "c1" && !c.IsPublished && c.Slug == "trips"
	})).Return(nil)

	svc := NewCatalogService(categoryRepo, nil)
	category, err := svc.UpdateCategory(context.Background(), "travel", CategoryInput{
		Title:       "Поездки",
		Slug:        "trips",
		IsPublished: false,
	})

	require.NoError(t, err)
	assert.Equal(t, "Поездки", category.Title)
	categoryRepo.AssertExpectations(t)
}

func TestCatalogLocationInvalidID(t *testing.T) {
	svc := NewCatalogService(nil, nil)

	_, err := svc.UpdateLocation(context.Background(), "moscow", LocationInput{Name: "Москва"})
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(svc.DeleteLocation(context.Background(), "moscow"), ErrNotFound))
}
