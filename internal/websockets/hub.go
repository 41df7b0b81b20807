// Package websockets pushes order events to connected back-office
// dashboards. Clients are read-only listeners; the server only ever
// broadcasts.
package websockets

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

type Hub struct {
	clients map[*Client]bool

	register chan *Client

	unregister chan *Client

	broadcast chan []byte
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Broadcast sends an event envelope to every connected dashboard.
// Fire-and-forget: marshal failures are logged, a slow client is dropped.
func (h *Hub) Broadcast(event string, payload any) {
	msg, err := json.Marshal(struct {
		Type string `json:"type"`
		Data any    `json:"data"`
	}{
		Type: event,
		Data: payload,
	})
	if err != nil {
		logrus.WithError(err).Warn("failed to marshal websocket event")
		return
	}

	h.broadcast <- msg
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}
