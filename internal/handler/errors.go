package handlers

import (
	"blogicum/internal/repository"
	"blogicum/internal/service"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeSuccess(w, ErrorResponse{Error: message}, statusCode)
}

// writeSuccess - функция для успешных ответов
func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeValidationError reports every failed field with the rule it broke.
func writeValidationError(w http.ResponseWriter, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = fe.Tag()
	}

	writeSuccess(w, ErrorResponse{Error: "Неверные данные", Fields: fields}, http.StatusBadRequest)
}

// writeServiceError maps service and repository errors to responses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrInvalidPage):
		WriteError(w, "Не найдено", http.StatusNotFound)
	case errors.Is(err, service.ErrUnauthorized):
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
	case errors.Is(err, service.ErrUserExists), errors.Is(err, repository.ErrConflict):
		WriteError(w, "Запись уже существует", http.StatusConflict)
	case errors.Is(err, repository.ErrInvalidReference):
		WriteError(w, "Связанная запись не найдена", http.StatusBadRequest)
	case errors.Is(err, repository.ErrInvalidCredentials):
		WriteError(w, "Неверное имя пользователя или пароль", http.StatusUnauthorized)
	default:
		log.Printf("Ошибка обработки запроса: %v", err)
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

func seeOther(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}
