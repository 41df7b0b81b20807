package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vite-gourmand/catering-service/internal/models"
	"github.com/vite-gourmand/catering-service/internal/service"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Create handles POST /api/contact
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadJSON(w)
		return
	}

	if _, err := h.contactService.Create(r.Context(), req); err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusCreated, "Message envoyé avec succès !")
}
