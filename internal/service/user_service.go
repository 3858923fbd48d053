package service

import (
	"blogicum/internal/config"
	"blogicum/internal/models"
	"blogicum/internal/repository"
	"context"
)

type UserService interface {
	CurrentUser(ctx context.Context, viewer Viewer) (*models.User, error)
	UpdateProfile(ctx context.Context, viewer Viewer, req repository.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
}

type userService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// CurrentUser loads the viewer's account as stored now. The username in a
// token goes stale once the profile is renamed.
func (s *userService) CurrentUser(ctx context.Context, viewer Viewer) (*models.User, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrUnauthorized
	}
	return s.userRepo.GetUserByID(ctx, viewer.UserID)
}

// UpdateProfile edits the viewer's own account; req.UserID is ignored.
func (s *userService) UpdateProfile(ctx context.Context, viewer Viewer, req repository.UpdateUserRequest) (*models.User, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrUnauthorized
	}

	// get user by id
	user, err := s.userRepo.GetUserByID(ctx, viewer.UserID)
	if err != nil {
		return nil, err
	}

	user.Username = req.Username
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email

	// update user
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes an account with its posts and comments.
func (s *userService) DeleteUser(ctx context.Context, username string) error {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	return s.userRepo.DeleteUser(ctx, user.UserID)
}
