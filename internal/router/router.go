package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vite-gourmand/catering-service/internal/api/handler"
	"github.com/vite-gourmand/catering-service/internal/middleware"
	"github.com/vite-gourmand/catering-service/internal/models"
	"github.com/vite-gourmand/catering-service/internal/session"
)

// Handlers bundles every request handler the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Menu      *handler.MenuHandler
	Order     *handler.OrderHandler
	Review    *handler.ReviewHandler
	Contact   *handler.ContactHandler
	Admin     *handler.AdminHandler
	Health    *handler.HealthHandler
	WebSocket *handler.WebSocketHandler
}

// New builds the HTTP routing tree. The session middleware runs on every
// request; the role gates are applied per route group.
func New(h Handlers, sessions *session.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Session(sessions))

	r.Route("/api", func(r chi.Router) {
		// Public
		r.Post("/inscription", h.Auth.Register)
		r.Post("/connexion", h.Auth.Login)
		r.Get("/deconnexion", h.Auth.Logout)
		r.Post("/mot-de-passe-oublie", h.Auth.ForgotPassword)
		r.Post("/reinitialisation-mot-de-passe", h.Auth.ResetPassword)

		r.Get("/menus", h.Menu.List)
		r.Get("/menus/{id}", h.Menu.Detail)
		r.Post("/contact", h.Contact.Create)
		r.Get("/avis", h.Review.List)
		r.Get("/health", h.Health.Check)

		// Authenticated clients
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/profil", h.Auth.Profile)
			r.Post("/commandes", h.Order.Create)
			r.Get("/commandes", h.Order.ListMine)
			r.Post("/avis", h.Review.Create)
		})

		// Employee back-office (admin passes the same gate)
		r.Route("/employe", func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleEmployee))
			r.Get("/commandes", h.Order.ListAll)
			r.Put("/commandes/{id}", h.Order.UpdateStatus)
			r.Post("/menus", h.Menu.Create)
		})

		// Admin back-office
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin))
			r.Get("/stats", h.Admin.Stats)
			r.Get("/commandes", h.Order.ListAll)
			r.Get("/employes", h.Admin.ListEmployees)
			r.Post("/employes", h.Admin.CreateEmployee)
		})
	})

	// Live order feed for the back-office dashboards
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(models.RoleEmployee))
		r.Get("/ws", h.WebSocket.Serve)
	})

	return r
}
