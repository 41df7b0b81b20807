package handler

import (
	"net/http"

	"github.com/vite-gourmand/catering-service/internal/db"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	database *db.Postgres
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(database *db.Postgres) *HealthHandler {
	return &HealthHandler{database: database}
}

// Check handles GET /api/health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.database.HealthCheck(r.Context()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "down"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
