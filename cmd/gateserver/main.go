package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/yczhou/minibattle/internal/battle"
	"github.com/yczhou/minibattle/internal/config"
	"github.com/yczhou/minibattle/internal/gateway"
	"github.com/yczhou/minibattle/internal/room"
	"github.com/yczhou/minibattle/internal/session"
	"github.com/yczhou/minibattle/internal/store"
	"github.com/yczhou/minibattle/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/backend.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting gateserver",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"listen_port", cfg.Gateway.Port,
		"ws_path", cfg.Gateway.Path,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to Redis
	logger.Info("connecting to redis", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)

	rdb, err := store.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	logger.Info("redis connected")

	// Wire the realtime pipeline: hub, dispatcher, matchmaking and
	// battle routes, then the WebSocket server in front of them.
	sessions := session.NewRedisStore(rdb)
	rooms := room.NewRedisStore(rdb)
	matchmaker := room.NewMatchmaker(rooms, cfg.Rooms.Capacity, logger)

	hub := gateway.NewHub(logger)
	disp := gateway.NewDispatcher(hub, logger)
	gateway.NewRoomHandlers(matchmaker, sessions, hub, logger).Register(disp)
	battle.NewRouter(logger).Register(disp)

	ws := gateway.NewServer(cfg.Gateway, cfg.Guest, sessions, hub, disp, logger)

	// No server-level read timeout: connections are long-lived and
	// deadlines are managed per message inside the gateway.
	wsServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Gateway.Host, cfg.Gateway.Port),
		Handler: ws.Handler(),
	}

	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Health.Port),
		Handler: createHealthHandler(cfg.Health.Path, rdb, hub, rooms),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting gateway server", "addr", wsServer.Addr)
		if err := wsServer.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("gateway server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("starting health server", "port", cfg.Health.Port)
		if err := healthServer.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("health server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := wsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("gateway server shutdown", "error", err)
		}
		if err := healthServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("health server shutdown", "error", err)
		}
		return nil
	})

	logger.Info("gateserver running",
		"instance_id", cfg.Instance.ID,
		"ws_url", fmt.Sprintf("ws://localhost:%d%s", cfg.Gateway.Port, cfg.Gateway.Path),
		"health_url", fmt.Sprintf("http://localhost:%d%s", cfg.Health.Port, cfg.Health.Path),
	)

	if err := g.Wait(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("gateserver stopped")
}

// createHealthHandler creates the HTTP handler for health checks.
func createHealthHandler(path string, rdb *redis.Client, hub *gateway.Hub, rooms *room.RedisStore) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := struct {
			Status     string                 `json:"status"`
			Components map[string]interface{} `json:"components"`
		}{
			Status:     "healthy",
			Components: make(map[string]interface{}),
		}

		if err := rdb.Ping(ctx).Err(); err != nil {
			health.Status = "unhealthy"
			health.Components["redis"] = map[string]string{
				"status": "disconnected",
				"error":  err.Error(),
			}
		} else {
			health.Components["redis"] = "connected"
		}

		stats := hub.Stats()
		health.Components["gateway"] = map[string]interface{}{
			"connections": stats.Connections,
		}

		if open, err := rooms.OpenRooms(ctx); err == nil {
			health.Components["matchmaking"] = map[string]interface{}{
				"open_rooms": len(open),
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if health.Status == "unhealthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(health)
	})

	return mux
}
