package gateway

import (
	"context"
	"errors"
)

// Errors
var (
	ErrConnNotFound = errors.New("connection not found")
	ErrSendBlocked  = errors.New("send buffer full")
)

// Route keys for the realtime surface. Connect and disconnect are
// transport events rather than routed actions; the rest arrive as the
// "action" field of an inbound event.
const (
	RouteJoinRoom    = "joinroom"
	RouteExitRoom    = "exitroom"
	RouteDestroyRoom = "destroyroom"
	RouteAttack      = "attack"
	RouteDie         = "die"
	RouteSyncScore   = "syncscore"
)

// ActionError is the action of pushes reporting a failed event.
const ActionError = "error"

// ActionPeerPlayerID is the action of pushes announcing a matched peer.
const ActionPeerPlayerID = "peer_player_id"

// Event is an inbound client message.
type Event struct {
	Action string `json:"action"`
	Data   string `json:"data,omitempty"`
}

// ServerMessage is an outbound push to a client.
type ServerMessage struct {
	Action string `json:"action"`
	Data   string `json:"data"`
}

// HandlerFunc handles one routed event for one connection. A returned
// error is pushed back to the connection as an error message.
type HandlerFunc func(ctx context.Context, connID string, ev Event) error

// Pusher delivers a message to a single connection. Delivery is
// best-effort: ErrConnNotFound when the connection is not held locally.
type Pusher interface {
	Push(connID string, msg ServerMessage) error
}
