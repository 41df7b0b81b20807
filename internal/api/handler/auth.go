package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vite-gourmand/catering-service/internal/middleware"
	"github.com/vite-gourmand/catering-service/internal/models"
	"github.com/vite-gourmand/catering-service/internal/service"
	"github.com/vite-gourmand/catering-service/internal/session"
)

// AuthHandler handles account and session endpoints.
type AuthHandler struct {
	authService *service.AuthService
	sessions    *session.Store
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *service.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

// Register handles POST /api/inscription
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadJSON(w)
		return
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Compte créé avec succès !",
		"id":      user.ID,
	})
}

// Login handles POST /api/connexion
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadJSON(w)
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	identity := session.Identity{
		ID:        user.ID,
		LastName:  user.LastName,
		FirstName: user.FirstName,
		Email:     user.Email,
		Role:      user.Role,
	}

	token, err := h.sessions.Create(r.Context(), identity)
	if err != nil {
		respondError(w, service.Internal(err))
		return
	}

	http.SetCookie(w, h.sessions.NewCookie(token))
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Connexion réussie",
		"user":    identity,
	})
}

// Logout handles GET /api/deconnexion
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.sessions.CookieName()); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(r.Context(), cookie.Value); err != nil {
			logrus.WithError(err).Warn("failed to destroy session")
		}
	}

	http.SetCookie(w, h.sessions.NewCookie(""))
	respondMessage(w, http.StatusOK, "Déconnexion réussie.")
}

// Profile handles GET /api/profil
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, service.Unauthorized("Vous devez être connecté."))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"user": identity})
}

// ForgotPassword handles POST /api/mot-de-passe-oublie
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadJSON(w)
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		respondError(w, err)
		return
	}

	// Uniform wording regardless of whether the address is registered
	respondMessage(w, http.StatusOK, "Si cet e-mail existe, un lien de réinitialisation a été envoyé.")
}

// ResetPassword handles POST /api/reinitialisation-mot-de-passe
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"mot_de_passe"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadJSON(w)
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Mot de passe réinitialisé.")
}
