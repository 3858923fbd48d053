package test

import (
	"blogicum/internal/models"
	"blogicum/internal/repository"
	"blogicum/internal/service"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAddComment(t *testing.T) {
	tests := []struct {
		name           string
		viewer         service.Viewer
		body           interface{}
		mockSetup      func(*MockCommentService)
		expectedStatus int
	}{
		{
			name:   "Комментарий сохранен",
			viewer: boris,
			body:   map[string]string{"text": "Отличный пост"},
			mockSetup: func(svc *MockCommentService) {
				svc.On("AddComment", mock.Anything, boris, testPostID, "Отличный пост").
					Return(&models.Comment{CommentID: testCommentID}, nil)
			},
			expectedStatus: http.StatusSeeOther,
		},
		{
			name:           "Аноним",
			viewer:         service.Viewer{},
			body:           map[string]string{"text": "Привет"},
			mockSetup:      func(svc *MockCommentService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Пустой текст",
			viewer:         boris,
			body:           map[string]string{"text": ""},
			mockSetup:      func(svc *MockCommentService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Только пробелы",
			viewer:         boris,
			body:           map[string]string{"text": "   \n"},
			mockSetup:      func(svc *MockCommentService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Битый JSON",
			viewer:         boris,
			body:           "{text:",
			mockSetup:      func(svc *MockCommentService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Скрытый пост",
			viewer: boris,
			body:   map[string]string{"text": "Отличный пост"},
			mockSetup: func(svc *MockCommentService) {
				svc.On("AddComment", mock.Anything, boris, testPostID, "Отличный пост").
					Return(nil, fmt.Errorf("пост с ID %s: %w", testPostID, service.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mocks := newTestHandlers()
			tt.mockSetup(mocks.comment)

			rr := httptest.NewRecorder()
			handler.AddComment(rr, newRequest(http.MethodPost, "/posts/"+testPostID+"/comment/", tt.body, tt.viewer, map[string]string{"id": testPostID}))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusSeeOther {
				assert.Equal(t, "/posts/"+testPostID+"/", rr.Header().Get("Location"))
			}
			mocks.assertExpectations(t)
		})
	}
}

func TestEditComment(t *testing.T) {
	vars := map[string]string{"id": testPostID, "comment_id": testCommentID}

	tests := []struct {
		name           string
		viewer         service.Viewer
		mockErr        error
		expectedStatus int
	}{
		{name: "Автор редактирует", viewer: anna, expectedStatus: http.StatusSeeOther},
		{name: "Чужой комментарий", viewer: boris, mockErr: service.ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "Комментарий другого поста", viewer: anna, mockErr: repository.ErrNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mocks := newTestHandlers()
			if tt.mockErr != nil {
				mocks.comment.On("UpdateComment", mock.Anything, tt.viewer, testPostID, testCommentID, "Исправлено").
					Return(nil, tt.mockErr)
			} else {
				mocks.comment.On("UpdateComment", mock.Anything, tt.viewer, testPostID, testCommentID, "Исправлено").
					Return(&models.Comment{CommentID: testCommentID}, nil)
			}

			rr := httptest.NewRecorder()
			handler.EditComment(rr, newRequest(http.MethodPut, "/posts/"+testPostID+"/edit_comment/"+testCommentID+"/",
				map[string]string{"text": "Исправлено"}, tt.viewer, vars))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			mocks.assertExpectations(t)
		})
	}
}

func TestDeleteComment(t *testing.T) {
	vars := map[string]string{"id": testPostID, "comment_id": testCommentID}

	tests := []struct {
		name           string
		viewer         service.Viewer
		mockSetup      func(*MockCommentService)
		expectedStatus int
	}{
		{
			name:   "Автор удаляет",
			viewer: anna,
			mockSetup: func(svc *MockCommentService) {
				svc.On("DeleteComment", mock.Anything, anna, testPostID, testCommentID).Return(nil)
			},
			expectedStatus: http.StatusSeeOther,
		},
		{
			name:   "Чужой комментарий",
			viewer: boris,
			mockSetup: func(svc *MockCommentService) {
				svc.On("DeleteComment", mock.Anything, boris, testPostID, testCommentID).Return(service.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Аноним",
			viewer:         service.Viewer{},
			mockSetup:      func(svc *MockCommentService) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mocks := newTestHandlers()
			tt.mockSetup(mocks.comment)

			rr := httptest.NewRecorder()
			handler.DeleteComment(rr, newRequest(http.MethodDelete, "/posts/"+testPostID+"/delete_comment/"+testCommentID+"/", nil, tt.viewer, vars))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			mocks.assertExpectations(t)
		})
	}
}
