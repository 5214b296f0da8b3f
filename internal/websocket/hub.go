package websocket

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Hub fans game events out to each player's open sockets. It implements the
// service layer's event sink; publishing to a player with no connection is a
// no-op.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]bool
	stopped bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]map[*Client]bool),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		client.Close()
		return
	}
	if h.clients[client.playerID] == nil {
		h.clients[client.playerID] = make(map[*Client]bool)
	}
	h.clients[client.playerID][client] = true
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := h.clients[client.playerID]
	if conns == nil || !conns[client] {
		return
	}
	delete(conns, client)
	if len(conns) == 0 {
		delete(h.clients, client.playerID)
	}
	client.Close()
}

// Publish sends one event to every socket the player has open. It never
// blocks game logic: slow consumers get their message dropped.
func (h *Hub) Publish(playerID uuid.UUID, event string, payload any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.stopped {
		return
	}
	for client := range h.clients[playerID] {
		if !client.TrySend(NewMessage(event, payload)) {
			log.Printf("ERROR [websocket.Publish] dropped %s event for player %s: send buffer full", event, playerID)
		}
	}
}

// Stop closes every connection and rejects further registrations.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	h.stopped = true
	for _, conns := range h.clients {
		for client := range conns {
			client.Close()
		}
	}
	h.clients = make(map[uuid.UUID]map[*Client]bool)
}
