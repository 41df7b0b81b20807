package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vite-gourmand/catering-service/internal/middleware"
	"github.com/vite-gourmand/catering-service/internal/models"
	"github.com/vite-gourmand/catering-service/internal/service"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles POST /api/commandes
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadJSON(w)
		return
	}

	identity, _ := middleware.GetIdentity(r.Context())

	summary, err := h.orderService.Create(r.Context(), identity, req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message":  "Commande enregistrée !",
		"commande": summary,
	})
}

// ListMine handles GET /api/commandes
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())

	orders, err := h.orderService.ListMine(r.Context(), identity)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// ListAll handles GET /api/employe/commandes and GET /api/admin/commandes
func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// UpdateStatus handles PUT /api/employe/commandes/{id}
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, service.NotFound("Commande non trouvée."))
		return
	}

	var req struct {
		Status models.OrderStatus `json:"statut"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadJSON(w)
		return
	}

	if err := h.orderService.UpdateStatus(r.Context(), id, req.Status); err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Statut mis à jour.")
}
