package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vite-gourmand/catering-service/internal/models"
	"github.com/vite-gourmand/catering-service/internal/service"
)

// MenuHandler handles menu browsing and back-office menu management.
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List handles GET /api/menus
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	menus, err := h.menuService.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, menus)
}

// Detail handles GET /api/menus/{id}
func (h *MenuHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, service.NotFound("Menu non trouvé."))
		return
	}

	detail, err := h.menuService.Detail(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// Create handles POST /api/employe/menus
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.MenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadJSON(w)
		return
	}

	menu, err := h.menuService.Create(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Menu créé !",
		"id":      menu.ID,
	})
}
