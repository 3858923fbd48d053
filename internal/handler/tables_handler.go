package handlers

import (
	"log"
	"net/http"
)

type TablesResponse struct {
	Tables map[string]int `json:"tables"`
}

func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := h.TablesService.CountRows(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, TablesResponse{Tables: counts}, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.HealthCheck(); err != nil {
		log.Printf("Проверка здоровья БД не пройдена: %v", err)
		WriteError(w, "База данных недоступна", http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
