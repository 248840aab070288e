package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Dispatcher routes inbound events to handlers by their action field.
// Handler failures and panics become error pushes to the requesting
// connection; no event escapes without a response.
type Dispatcher struct {
	pusher Pusher
	logger *slog.Logger

	mu     sync.RWMutex
	routes map[string]HandlerFunc
}

// NewDispatcher creates a dispatcher pushing responses through pusher.
func NewDispatcher(pusher Pusher, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		pusher: pusher,
		logger: logger,
		routes: make(map[string]HandlerFunc),
	}
}

// Register binds a route key to a handler. Later registrations of the
// same key overwrite earlier ones.
func (d *Dispatcher) Register(route string, h HandlerFunc) {
	d.mu.Lock()
	d.routes[route] = h
	d.mu.Unlock()
}

// Dispatch handles one event from one connection.
func (d *Dispatcher) Dispatch(ctx context.Context, connID string, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("handler panic", "route", ev.Action, "conn_id", connID, "panic", r)
			d.respondError(connID, "internal error")
		}
	}()

	if ev.Action == "" {
		d.respondError(connID, "missing action")
		return
	}

	d.mu.RLock()
	h, ok := d.routes[ev.Action]
	d.mu.RUnlock()

	if !ok {
		d.logger.Warn("route not registered", "route", ev.Action, "conn_id", connID)
		d.respondError(connID, fmt.Sprintf("route '%s' not registered", ev.Action))
		return
	}

	if err := h(ctx, connID, ev); err != nil {
		d.logger.Error("handler failed", "route", ev.Action, "conn_id", connID, "error", err)
		d.respondError(connID, err.Error())
	}
}

func (d *Dispatcher) respondError(connID, msg string) {
	if err := d.pusher.Push(connID, ServerMessage{Action: ActionError, Data: msg}); err != nil {
		d.logger.Debug("error push failed", "conn_id", connID, "error", err)
	}
}
