package handlers

import (
	"blogicum/internal/service"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type CategoryRequest struct {
	Title       string `json:"title" validate:"required,max=256"`
	Slug        string `json:"slug" validate:"required,max=64,slug"`
	Description string `json:"description" validate:"required"`
	IsPublished *bool  `json:"isPublished"`
}

type LocationRequest struct {
	Name        string `json:"name" validate:"required,max=256"`
	IsPublished *bool  `json:"isPublished"`
}

func isPublished(flag *bool) bool {
	return flag == nil || *flag
}

func (h *Handlers) decodeCategory(w http.ResponseWriter, r *http.Request) (service.CategoryInput, bool) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return service.CategoryInput{}, false
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return service.CategoryInput{}, false
	}

	return service.CategoryInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		IsPublished: isPublished(req.IsPublished),
	}, true
}

func (h *Handlers) decodeLocation(w http.ResponseWriter, r *http.Request) (service.LocationInput, bool) {
	var req LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return service.LocationInput{}, false
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return service.LocationInput{}, false
	}

	return service.LocationInput{
		Name:        req.Name,
		IsPublished: isPublished(req.IsPublished),
	}, true
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeCategory(w, r)
	if !ok {
		return
	}

	category, err := h.CatalogService.CreateCategory(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, category, http.StatusCreated)
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeCategory(w, r)
	if !ok {
		return
	}

	category, err := h.CatalogService.UpdateCategory(r.Context(), mux.Vars(r)["slug"], input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, category, http.StatusOK)
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.CatalogService.DeleteCategory(r.Context(), mux.Vars(r)["slug"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Категория удалена"}, http.StatusOK)
}

func (h *Handlers) CreateLocation(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeLocation(w, r)
	if !ok {
		return
	}

	location, err := h.CatalogService.CreateLocation(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, location, http.StatusCreated)
}

func (h *Handlers) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeLocation(w, r)
	if !ok {
		return
	}

	location, err := h.CatalogService.UpdateLocation(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, location, http.StatusOK)
}

func (h *Handlers) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := h.CatalogService.DeleteLocation(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Местоположение удалено"}, http.StatusOK)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.DeleteUser(r.Context(), mux.Vars(r)["username"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Пользователь удален"}, http.StatusOK)
}
