package gateway

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/yczhou/minibattle/internal/config"
	"github.com/yczhou/minibattle/internal/session"
)

// Server accepts WebSocket connections and runs them through the
// session registry and dispatcher.
type Server struct {
	cfg      config.GatewayConfig
	guest    config.GuestConfig
	sessions session.Store
	hub      *Hub
	disp     *Dispatcher
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewServer creates the realtime server.
func NewServer(
	cfg config.GatewayConfig,
	guest config.GuestConfig,
	sessions session.Store,
	hub *Hub,
	disp *Dispatcher,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:      cfg,
		guest:    guest,
		sessions: sessions,
		hub:      hub,
		disp:     disp,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect from arbitrary origins.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Handler returns the HTTP handler serving the upgrade path.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.cfg.Path, s.handleConnect)
	return mux
}

// handleConnect upgrades the request and runs the connection until it
// closes. A user_id query parameter claims an identity; without one a
// guest identifier is generated.
func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		userID = session.GuestID(s.guest.IDLength, s.guest.Alphabet)
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "error", err)
		return
	}

	connID := uuid.NewString()
	c := newClient(connID, conn, s.cfg, s.logger)

	if err := s.sessions.Register(r.Context(), connID, userID); err != nil {
		s.logger.Error("session register failed", "conn_id", connID, "user_id", userID, "error", err)
		c.close()
		return
	}

	s.hub.add(connID, c)
	s.logger.Info("connected", "conn_id", connID, "user_id", userID)

	go c.writeLoop()
	c.readLoop(func(ev Event) {
		s.disp.Dispatch(r.Context(), connID, ev)
	})

	// Read loop returned: the connection is gone.
	s.hub.remove(connID)
	if err := s.sessions.Unregister(context.Background(), connID); err != nil {
		s.logger.Error("session unregister failed", "conn_id", connID, "error", err)
	}
	s.logger.Info("disconnected", "conn_id", connID, "user_id", userID)
}
