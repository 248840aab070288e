package session

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when no session matches a lookup.
var ErrSessionNotFound = errors.New("session not found")

// Store tracks which user owns which live connection.
type Store interface {
	// Register records the conn -> user mapping and the reverse index.
	// Re-registering a connection overwrites the previous owner.
	Register(ctx context.Context, connID, userID string) error

	// Unregister removes both directions. Idempotent if already absent.
	Unregister(ctx context.Context, connID string) error

	// UserByConn returns the user owning connID, or ErrSessionNotFound.
	UserByConn(ctx context.Context, connID string) (string, error)

	// ConnByUser returns the connection registered for userID, or
	// ErrSessionNotFound.
	ConnByUser(ctx context.Context, userID string) (string, error)
}
