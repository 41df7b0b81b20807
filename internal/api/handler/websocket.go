package handler

import (
	"net/http"

	"github.com/vite-gourmand/catering-service/internal/middleware"
	"github.com/vite-gourmand/catering-service/internal/websockets"
)

// WebSocketHandler upgrades back-office dashboard connections. The route is
// behind the employee role gate, so a verified identity is always present.
type WebSocketHandler struct {
	hub *websockets.Hub
}

// NewWebSocketHandler creates a new websocket handler.
func NewWebSocketHandler(hub *websockets.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// Serve handles GET /ws
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := websockets.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written the error response
		return
	}

	websockets.ServeWs(h.hub, conn, identity.ID.String())
}
