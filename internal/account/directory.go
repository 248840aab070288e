package account

import (
	"context"
	"log/slog"
)

// Directory exposes the user-directory operations over a Repository.
type Directory struct {
	repo   Repository
	logger *slog.Logger
}

// NewDirectory creates a user directory.
func NewDirectory(repo Repository, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{repo: repo, logger: logger}
}

// CreateUser inserts a fresh user record.
// Returns ErrEmptyUserID or ErrUserExists on invalid input.
func (d *Directory) CreateUser(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if err := d.repo.Create(ctx, userID); err != nil {
		return err
	}
	d.logger.Info("user created", "user_id", userID)
	return nil
}

// DeleteUser removes an existing user record.
// Returns ErrEmptyUserID or ErrUserNotFound on invalid input.
func (d *Directory) DeleteUser(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if err := d.repo.Delete(ctx, userID); err != nil {
		return err
	}
	d.logger.Info("user deleted", "user_id", userID)
	return nil
}

// GetUser returns the record for userID, or ErrUserNotFound.
func (d *Directory) GetUser(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	return d.repo.Get(ctx, userID)
}
