package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vite-gourmand/catering-service/internal/middleware"
	"github.com/vite-gourmand/catering-service/internal/models"
	"github.com/vite-gourmand/catering-service/internal/service"
)

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Create handles POST /api/avis
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadJSON(w)
		return
	}

	identity, _ := middleware.GetIdentity(r.Context())

	if _, err := h.reviewService.Create(r.Context(), identity, req); err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusCreated, "Avis enregistré !")
}

// List handles GET /api/avis
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListLatest(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, reviews)
}
