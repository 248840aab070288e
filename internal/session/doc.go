// Package session implements the connection registry.
//
// Each live transport connection maps to the user that owns it. The
// registry also maintains a reverse index (user -> connection) written
// atomically alongside the primary record, so looking up a peer's
// connection is a single key read rather than a scan over every session.
// A user reconnecting under a new connection id overwrites the reverse
// index; lookups by the old connection id then miss.
package session
