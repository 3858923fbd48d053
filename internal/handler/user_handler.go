package handlers

import (
	"blogicum/internal/models"
	"blogicum/internal/repository"
	"blogicum/internal/service"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

type UserResponse struct {
	UserId    string    `json:"userId"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProfileResponse struct {
	Profile UserResponse `json:"profile"`
	*service.PostPage
}

type UpdateProfileRequest struct {
	Username  string `json:"username" validate:"required,max=150,slug"`
	FirstName string `json:"firstName" validate:"max=150"`
	LastName  string `json:"lastName" validate:"max=150"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// newUserResponse hides the e-mail from everybody but the account owner.
func newUserResponse(user *models.User, viewer service.Viewer) UserResponse {
	response := UserResponse{
		UserId:    user.UserID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
	if service.CanModify(viewer, user.UserID) {
		response.Email = user.Email
	}
	return response
}

func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(r)
	if !ok {
		WriteError(w, "Страница не найдена", http.StatusNotFound)
		return
	}
	viewer := service.ViewerFromContext(r.Context())

	owner, posts, err := h.PostService.ProfilePosts(r.Context(), viewer, mux.Vars(r)["username"], page)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, ProfileResponse{
		Profile:  newUserResponse(owner, viewer),
		PostPage: posts,
	}, http.StatusOK)
}

func (h *Handlers) EditProfile(w http.ResponseWriter, r *http.Request) {
	viewer := service.ViewerFromContext(r.Context())
	if !viewer.IsAuthenticated() {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	user, err := h.UserService.UpdateProfile(r.Context(), viewer, repository.UpdateUserRequest{
		UserID:    viewer.UserID,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	seeOther(w, r, profileURL(user.Username))
}
