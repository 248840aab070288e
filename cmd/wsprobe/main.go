// wsprobe connects to a running gateserver and exercises the realtime
// protocol from the command line.
// Usage: go run ./cmd/wsprobe --url ws://localhost:8082/ws --user alice
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
)

type event struct {
	Action string `json:"action"`
	Data   string `json:"data,omitempty"`
}

func main() {
	rawURL := flag.String("url", "ws://localhost:8082/ws", "gateserver WebSocket URL")
	userID := flag.String("user", "", "user_id to connect as (guest when empty)")
	action := flag.String("action", "joinroom", "action to send after connecting (empty to just listen)")
	data := flag.String("data", "", "data payload for the action")
	verbose := flag.Bool("verbose", false, "print raw message JSON")
	flag.Parse()

	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	target, err := url.Parse(*rawURL)
	if err != nil {
		logger.Error("invalid url", "url", *rawURL, "error", err)
		os.Exit(1)
	}
	if *userID != "" {
		q := target.Query()
		q.Set("user_id", *userID)
		target.RawQuery = q.Encode()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	logger.Info("connecting", "url", target.String())

	dialCtx, dialCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dialCancel()
	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, target.String(), nil)
	if err != nil {
		logger.Error("dial failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	logger.Info("connected")

	if *action != "" {
		ev := event{Action: *action, Data: *data}
		if err := conn.WriteJSON(ev); err != nil {
			logger.Error("send failed", "action", *action, "error", err)
			os.Exit(1)
		}
		logger.Info("sent", "action", *action, "data", *data)
	}

	// Unblock the read loop when the context is cancelled.
	go func() {
		<-ctx.Done()
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("probe stopped")
				return
			}
			logger.Error("read failed", "error", err)
			os.Exit(1)
		}

		if *verbose {
			fmt.Println(string(raw))
			continue
		}

		var ev event
		if err := json.Unmarshal(raw, &ev); err != nil {
			logger.Warn("unparsable message", "raw", string(raw))
			continue
		}
		logger.Info("received", "action", ev.Action, "data", ev.Data)
	}
}
