package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vite-gourmand/catering-service/internal/models"
	"github.com/vite-gourmand/catering-service/internal/service"
)

// AdminHandler handles the admin back-office endpoints.
type AdminHandler struct {
	authService  *service.AuthService
	statsService *service.StatsService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(authService *service.AuthService, statsService *service.StatsService) *AdminHandler {
	return &AdminHandler{
		authService:  authService,
		statsService: statsService,
	}
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.statsService.Summary(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// ListEmployees handles GET /api/admin/employes
func (h *AdminHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.authService.ListEmployees(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, employees)
}

// CreateEmployee handles POST /api/admin/employes
func (h *AdminHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadJSON(w)
		return
	}

	employee, err := h.authService.CreateEmployee(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Employé créé !",
		"id":      employee.ID,
	})
}
