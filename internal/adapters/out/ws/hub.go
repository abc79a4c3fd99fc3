// Package ws implements the websocket hub that pushes order processing
// notifications to connected clients. The hub itself is transport agnostic:
// it broadcasts to whatever clients are registered, and the Handler upgrades
// HTTP requests into clients.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
)

// envelope is the wire format of every hub message. Event names the kind of
// notification, Data carries its payload.
type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub keeps the set of connected clients and fans broadcast messages out to
// all of them. All state is owned by the run loop, so registration and
// broadcasting never need a lock.
type Hub struct {
	logger     *slog.Logger
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// NewHub creates a hub. Run must be called before the hub accepts clients.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

// Run owns the client set until the context is cancelled. Clients that cannot
// keep up with the broadcast stream are dropped rather than allowed to stall
// everyone else.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.logger.Info("websocket client connected", "online", len(h.clients))
		case client := <-h.unregister:
			h.drop(client)
		case data := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					h.drop(client)
				}
			}
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return
		}
	}
}

// BroadcastToAll sends the event to every connected client. Payloads that
// cannot be serialized are logged and dropped, a notification is never worth
// failing its producer over.
func (h *Hub) BroadcastToAll(event string, payload any) {
	data, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		h.logger.Error("broadcast payload not serializable", "error", err)
		return
	}

	h.broadcast <- data
}

func (h *Hub) drop(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}

	delete(h.clients, client)
	close(client.send)
	h.logger.Info("websocket client disconnected", "online", len(h.clients))
}
