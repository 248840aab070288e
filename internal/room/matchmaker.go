package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Matchmaker assigns joining users to rooms.
type Matchmaker struct {
	store    Store
	capacity int
	logger   *slog.Logger
}

// NewMatchmaker creates a matchmaker over the given store.
func NewMatchmaker(store Store, capacity int, logger *slog.Logger) *Matchmaker {
	if capacity < 2 {
		capacity = 2
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Matchmaker{store: store, capacity: capacity, logger: logger}
}

// Join assigns userID to an open room, or opens a new one when none is
// available. The popped room stays off the open list either way: a full
// join closes it, and a stale full room is simply dropped.
func (m *Matchmaker) Join(ctx context.Context, userID string) (Assignment, error) {
	if userID == "" {
		return Assignment{}, ErrEmptyUserID
	}

	for {
		name, err := m.store.PopOpen(ctx)
		if errors.Is(err, ErrNoOpenRoom) {
			return m.create(ctx, userID)
		}
		if err != nil {
			return Assignment{}, err
		}

		members, err := m.store.AddMember(ctx, name, userID, m.capacity)
		if errors.Is(err, ErrRoomFull) {
			// Residue of a racing join; try the next open room.
			m.logger.Warn("skipping full room on open list", "room", name)
			continue
		}
		if err != nil {
			return Assignment{}, err
		}

		if err := m.store.SetRoomOf(ctx, userID, name); err != nil {
			return Assignment{}, err
		}

		if len(members) == 1 {
			// The room record vanished between open-listing and now;
			// the joiner becomes its sole occupant.
			m.logger.Warn("joined an empty room", "room", name, "user_id", userID)
			if err := m.store.PushOpen(ctx, name); err != nil {
				return Assignment{}, err
			}
			return Assignment{Room: name, Created: true}, nil
		}

		peer := members[0]
		m.logger.Info("user joined room", "user_id", userID, "room", name, "peer", peer)
		return Assignment{Room: name, Peer: peer}, nil
	}
}

// create opens a fresh room named after the user.
func (m *Matchmaker) create(ctx context.Context, userID string) (Assignment, error) {
	name := fmt.Sprintf("%s%s", userID, RoomSuffix)

	if err := m.store.CreateRoom(ctx, name, userID); err != nil {
		return Assignment{}, err
	}
	if err := m.store.SetRoomOf(ctx, userID, name); err != nil {
		return Assignment{}, err
	}
	if err := m.store.PushOpen(ctx, name); err != nil {
		return Assignment{}, err
	}

	m.logger.Info("user created room", "user_id", userID, "room", name)
	return Assignment{Room: name, Created: true}, nil
}
