package realtime

import (
	"sync"
)

// Client represents a single websocket client connection.
// We keep it minimal here; the actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub maintains active user connections and fans project events out to them.
// Event payloads are built by handlers; the hub only routes by user id.
type Hub struct {
	mu            sync.RWMutex
	clientsByUser map[string]map[Client]struct{}
}

var hubInstance *Hub
var once sync.Once

// GetHub returns a singleton hub instance.
func GetHub() *Hub {
	once.Do(func() {
		hubInstance = &Hub{
			clientsByUser: make(map[string]map[Client]struct{}),
		}
	})
	return hubInstance
}

// Register adds a client under a user ID.
func (h *Hub) Register(userID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clientsByUser[userID]; !ok {
		h.clientsByUser[userID] = make(map[Client]struct{})
	}
	h.clientsByUser[userID][client] = struct{}{}
}

// Unregister removes a client; if user has no more clients, cleans up map.
func (h *Hub) Unregister(userID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.clientsByUser[userID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.clientsByUser, userID)
		}
	}
}

// Broadcast sends a message to all clients of a user.
func (h *Hub) Broadcast(userID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	h.sendLocked(userID, message)
}

// BroadcastToUsers sends a message to every client of each listed user, used
// to fan a project event out to its members.
func (h *Hub) BroadcastToUsers(userIDs []string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, userID := range userIDs {
		h.sendLocked(userID, message)
	}
}

func (h *Hub) sendLocked(userID string, message []byte) {
	for c := range h.clientsByUser[userID] {
		// a failed write is cleaned up by the ws handler's reader loop
		_ = c.Send(message)
	}
}
