package account

import (
	"context"
	"errors"
	"time"
)

// Errors
var (
	ErrEmptyUserID  = errors.New("empty user_id")
	ErrUserExists   = errors.New("user_id exists")
	ErrUserNotFound = errors.New("user_id not exists")
)

// User is a directory record. The identifier is externally supplied and
// unique; there are no other attributes.
type User struct {
	ID        string
	CreatedAt time.Time
}

// Repository is the durable store for user records.
type Repository interface {
	// Create inserts a record. Returns ErrUserExists if the id is taken.
	Create(ctx context.Context, userID string) error

	// Delete removes a record. Returns ErrUserNotFound if absent.
	Delete(ctx context.Context, userID string) error

	// Get returns the record or ErrUserNotFound.
	Get(ctx context.Context, userID string) (*User, error)
}
