// Package gateway hosts the realtime WebSocket surface.
//
// A connecting client is assigned a connection id, registered in the
// session store, and kept in the local hub for push delivery. Inbound
// events carry a route key in their "action" field and are dispatched
// to registered handlers; every event terminates with a response, even
// on handler panic. Pushes are best-effort and one-shot: no retry, no
// acknowledgment, no ordering guarantee across sends.
package gateway
