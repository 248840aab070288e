package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yczhou/minibattle/internal/room"
	"github.com/yczhou/minibattle/internal/session"
)

// Joiner is the matchmaking operation the room handlers need.
type Joiner interface {
	Join(ctx context.Context, userID string) (room.Assignment, error)
}

// RoomHandlers implements the room-related route keys.
type RoomHandlers struct {
	matchmaker Joiner
	sessions   session.Store
	pusher     Pusher
	logger     *slog.Logger
}

// NewRoomHandlers creates the room route handlers.
func NewRoomHandlers(matchmaker Joiner, sessions session.Store, pusher Pusher, logger *slog.Logger) *RoomHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &RoomHandlers{
		matchmaker: matchmaker,
		sessions:   sessions,
		pusher:     pusher,
		logger:     logger,
	}
}

// Register binds the room routes on a dispatcher.
func (h *RoomHandlers) Register(d *Dispatcher) {
	d.Register(RouteJoinRoom, h.JoinRoom)
	d.Register(RouteExitRoom, h.ExitRoom)
	d.Register(RouteDestroyRoom, h.DestroyRoom)
}

// JoinRoom assigns the connection's user to a room and notifies both
// sides when a pair forms. The peer push is best-effort: a peer that
// disconnected or reconnected elsewhere is logged and skipped.
func (h *RoomHandlers) JoinRoom(ctx context.Context, connID string, ev Event) error {
	userID, err := h.sessions.UserByConn(ctx, connID)
	if err != nil {
		return fmt.Errorf("resolve user for connection: %w", err)
	}

	asg, err := h.matchmaker.Join(ctx, userID)
	if err != nil {
		return fmt.Errorf("join room: %w", err)
	}

	if err := h.pusher.Push(connID, ServerMessage{Action: RouteJoinRoom, Data: asg.Room}); err != nil {
		return fmt.Errorf("push room assignment: %w", err)
	}

	if asg.Peer == "" {
		return nil
	}

	if err := h.pusher.Push(connID, ServerMessage{Action: ActionPeerPlayerID, Data: asg.Peer}); err != nil {
		return fmt.Errorf("push peer id: %w", err)
	}

	peerConn, err := h.sessions.ConnByUser(ctx, asg.Peer)
	if err != nil {
		h.logger.Warn("peer has no live connection", "peer", asg.Peer, "room", asg.Room, "error", err)
		return nil
	}
	if err := h.pusher.Push(peerConn, ServerMessage{Action: ActionPeerPlayerID, Data: userID}); err != nil {
		h.logger.Warn("peer push failed", "peer", asg.Peer, "conn_id", peerConn, "error", err)
	}
	return nil
}

// ExitRoom is accepted but room teardown is not built yet.
func (h *RoomHandlers) ExitRoom(ctx context.Context, connID string, ev Event) error {
	h.logger.Info("exitroom requested", "conn_id", connID)
	return fmt.Errorf("%s is not supported yet", RouteExitRoom)
}

// DestroyRoom is accepted but room teardown is not built yet.
func (h *RoomHandlers) DestroyRoom(ctx context.Context, connID string, ev Event) error {
	h.logger.Info("destroyroom requested", "conn_id", connID)
	return fmt.Errorf("%s is not supported yet", RouteDestroyRoom)
}
