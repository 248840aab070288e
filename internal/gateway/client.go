package gateway

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yczhou/minibattle/internal/config"
)

// client wraps one accepted WebSocket connection: a read loop feeding
// the dispatcher and a write loop draining the send queue.
type client struct {
	id     string
	conn   *websocket.Conn
	cfg    config.GatewayConfig
	logger *slog.Logger

	send      chan ServerMessage
	done      chan struct{}
	closeOnce sync.Once
}

func newClient(id string, conn *websocket.Conn, cfg config.GatewayConfig, logger *slog.Logger) *client {
	return &client{
		id:     id,
		conn:   conn,
		cfg:    cfg,
		logger: logger,
		send:   make(chan ServerMessage, cfg.SendBuffer),
		done:   make(chan struct{}),
	}
}

// trySend enqueues a push without blocking the caller.
func (c *client) trySend(msg ServerMessage) error {
	select {
	case <-c.done:
		return ErrConnNotFound
	case c.send <- msg:
		return nil
	default:
		return ErrSendBlocked
	}
}

// readLoop reads client events until the connection dies, handing each
// one to handle. It owns the connection's read side.
func (c *client) readLoop(handle func(Event)) {
	defer c.close()

	c.conn.SetReadDeadline(time.Now().Add(c.cfg.ReadTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.ReadTimeout))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Debug("read error", "conn_id", c.id, "error", err)
			}
			return
		}

		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			c.logger.Warn("malformed event", "conn_id", c.id, "error", err)
			c.trySend(ServerMessage{Action: ActionError, Data: "malformed event"})
			continue
		}

		handle(ev)
	}
}

// writeLoop drains the send queue and keeps the connection alive with
// pings. It owns the connection's write side.
func (c *client) writeLoop() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return

		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Debug("write error", "conn_id", c.id, "error", err)
				c.close()
				return
			}

		case <-ticker.C:
			deadline := time.Now().Add(c.cfg.WriteTimeout)
			if err := c.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				c.logger.Debug("ping failed", "conn_id", c.id, "error", err)
				c.close()
				return
			}
		}
	}
}

// close tears the connection down. Safe to call from both loops.
func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		c.conn.Close()
	})
}
