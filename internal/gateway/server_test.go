package gateway

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yczhou/minibattle/internal/config"
	"github.com/yczhou/minibattle/internal/session"
)

// snapshot returns a copy of the conn -> user mapping.
func (f *fakeSessions) snapshot() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.byConn))
	for conn, user := range f.byConn {
		out[conn] = user
	}
	return out
}

// failingSessions rejects every registration.
type failingSessions struct {
	*fakeSessions
}

func (f *failingSessions) Register(ctx context.Context, connID, userID string) error {
	return errors.New("store unavailable")
}

func testGatewayConfig() config.GatewayConfig {
	return config.GatewayConfig{
		Path:         "/ws",
		PingInterval: time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: time.Second,
		SendBuffer:   8,
	}
}

func testGuestConfig() config.GuestConfig {
	return config.GuestConfig{
		IDLength: 12,
		Alphabet: session.DefaultGuestAlphabet,
	}
}

// startTestServer wires a server over the given session store with an
// echo route registered.
func startTestServer(t *testing.T, sessions session.Store) (*httptest.Server, *Hub) {
	t.Helper()

	hub := NewHub(nil)
	disp := NewDispatcher(hub, nil)
	disp.Register("echo", func(ctx context.Context, connID string, ev Event) error {
		return hub.Push(connID, ServerMessage{Action: "echo", Data: ev.Data})
	})

	srv := NewServer(testGatewayConfig(), testGuestConfig(), sessions, hub, disp, nil)
	server := httptest.NewServer(srv.Handler())
	t.Cleanup(server.Close)

	return server, hub
}

func wsURL(server *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + path
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not reached: %s", msg)
}

func TestServerRegistersConnection(t *testing.T) {
	sessions := newFakeSessions()
	server, hub := startTestServer(t, sessions)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, "/ws?user_id=alice"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	waitFor(t, func() bool {
		for _, user := range sessions.snapshot() {
			if user == "alice" {
				return true
			}
		}
		return false
	}, "session registered for alice")

	waitFor(t, func() bool { return hub.Stats().Connections == 1 }, "connection in hub")
}

func TestServerDispatchesEvents(t *testing.T) {
	sessions := newFakeSessions()
	server, _ := startTestServer(t, sessions)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, "/ws?user_id=alice"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(Event{Action: "echo", Data: "ping"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if msg.Action != "echo" || msg.Data != "ping" {
		t.Errorf("push = %+v, want echo ping", msg)
	}
}

func TestServerUnknownRouteAnswersError(t *testing.T) {
	sessions := newFakeSessions()
	server, _ := startTestServer(t, sessions)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, "/ws?user_id=alice"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(Event{Action: "warp"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if msg.Action != ActionError {
		t.Errorf("push action = %q, want %q", msg.Action, ActionError)
	}
}

func TestServerAssignsGuestID(t *testing.T) {
	sessions := newFakeSessions()
	server, _ := startTestServer(t, sessions)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, "/ws"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	var guest string
	waitFor(t, func() bool {
		for _, user := range sessions.snapshot() {
			guest = user
			return true
		}
		return false
	}, "guest session registered")

	if len(guest) != 12 {
		t.Errorf("guest id %q length = %d, want 12", guest, len(guest))
	}
	for _, c := range guest {
		if !strings.ContainsRune(session.DefaultGuestAlphabet, c) {
			t.Errorf("guest id %q contains %q outside the alphabet", guest, c)
		}
	}
}

func TestServerUnregistersOnClose(t *testing.T) {
	sessions := newFakeSessions()
	server, hub := startTestServer(t, sessions)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, "/ws?user_id=alice"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}

	waitFor(t, func() bool { return len(sessions.snapshot()) == 1 }, "session registered")

	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	conn.Close()

	waitFor(t, func() bool { return len(sessions.snapshot()) == 0 }, "session unregistered")
	waitFor(t, func() bool { return hub.Stats().Connections == 0 }, "connection removed from hub")
}

func TestServerClosesOnRegisterFailure(t *testing.T) {
	sessions := &failingSessions{fakeSessions: newFakeSessions()}
	server, hub := startTestServer(t, sessions)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, "/ws?user_id=alice"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// The server closes the socket without adding it to the hub.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected the connection to be closed")
	}
	if got := hub.Stats().Connections; got != 0 {
		t.Errorf("Stats().Connections = %d, want 0", got)
	}
	if got := len(sessions.snapshot()); got != 0 {
		t.Errorf("registered sessions = %d, want 0", got)
	}
}
