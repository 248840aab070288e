package gateway

import (
	"log/slog"
	"sync"
)

// sender is the hub's view of a live connection.
type sender interface {
	trySend(msg ServerMessage) error
}

// Hub holds the live connections owned by this gateway instance and
// delivers pushes to them.
type Hub struct {
	logger *slog.Logger

	mu    sync.RWMutex
	conns map[string]sender
}

// HubStats provides statistics about the hub.
type HubStats struct {
	Connections int
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger: logger,
		conns:  make(map[string]sender),
	}
}

// add registers a live connection under its id.
func (h *Hub) add(connID string, s sender) {
	h.mu.Lock()
	h.conns[connID] = s
	h.mu.Unlock()
}

// remove drops a connection. Idempotent if already absent.
func (h *Hub) remove(connID string) {
	h.mu.Lock()
	delete(h.conns, connID)
	h.mu.Unlock()
}

// Push delivers one message to one connection, best-effort.
func (h *Hub) Push(connID string, msg ServerMessage) error {
	h.mu.RLock()
	s, ok := h.conns[connID]
	h.mu.RUnlock()

	if !ok {
		return ErrConnNotFound
	}
	return s.trySend(msg)
}

// Stats returns current statistics.
func (h *Hub) Stats() HubStats {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return HubStats{Connections: len(h.conns)}
}
