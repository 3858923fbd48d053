package handlers

import (
	"blogicum/internal/service"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *Handlers) decodeComment(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return "", false
	}
	req.Text = strings.TrimSpace(req.Text)

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return "", false
	}

	return req.Text, true
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	viewer := service.ViewerFromContext(r.Context())
	if !viewer.IsAuthenticated() {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}
	postID := mux.Vars(r)["id"]

	text, ok := h.decodeComment(w, r)
	if !ok {
		return
	}

	if _, err := h.CommentService.AddComment(r.Context(), viewer, postID, text); err != nil {
		writeServiceError(w, err)
		return
	}

	seeOther(w, r, postURL(postID))
}

func (h *Handlers) EditComment(w http.ResponseWriter, r *http.Request) {
	viewer := service.ViewerFromContext(r.Context())
	if !viewer.IsAuthenticated() {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)

	text, ok := h.decodeComment(w, r)
	if !ok {
		return
	}

	if _, err := h.CommentService.UpdateComment(r.Context(), viewer, vars["id"], vars["comment_id"], text); err != nil {
		writeServiceError(w, err)
		return
	}

	seeOther(w, r, postURL(vars["id"]))
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	viewer := service.ViewerFromContext(r.Context())
	if !viewer.IsAuthenticated() {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)

	if err := h.CommentService.DeleteComment(r.Context(), viewer, vars["id"], vars["comment_id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	seeOther(w, r, postURL(vars["id"]))
}
