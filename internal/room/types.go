package room

import (
	"context"
	"errors"
)

// Errors
var (
	ErrEmptyUserID = errors.New("empty user id")
	ErrNoOpenRoom  = errors.New("no open room")
	ErrRoomFull    = errors.New("room full")
	ErrNotInRoom   = errors.New("player not in a room")
)

// RoomSuffix is appended to the creating user's id to derive the room name.
const RoomSuffix = "_ROOM"

// Assignment is the outcome of a join request.
type Assignment struct {
	Room    string // assigned room name
	Peer    string // peer user id, empty when the user is the sole occupant
	Created bool   // true when a new room was opened
}

// Store is the shared matchmaking state. Implementations must make
// PopOpen and AddMember safe against concurrent joiners.
type Store interface {
	// PopOpen removes and returns the most recently opened room
	// (LIFO), or ErrNoOpenRoom when the list is empty.
	PopOpen(ctx context.Context) (string, error)

	// PushOpen appends a room to the open list.
	PushOpen(ctx context.Context, name string) error

	// OpenRooms returns the current open list.
	OpenRooms(ctx context.Context) ([]string, error)

	// CreateRoom resets the room record with creator as sole member.
	CreateRoom(ctx context.Context, name, creator string) error

	// AddMember appends userID if the room holds fewer than capacity
	// members, returning the full member list afterwards, or
	// ErrRoomFull without modifying the room.
	AddMember(ctx context.Context, name, userID string, capacity int) ([]string, error)

	// Members returns the room's member list in join order.
	Members(ctx context.Context, name string) ([]string, error)

	// RoomOf returns the room userID currently occupies, or ErrNotInRoom.
	RoomOf(ctx context.Context, userID string) (string, error)

	// SetRoomOf records which room userID occupies.
	SetRoomOf(ctx context.Context, userID, name string) error
}
