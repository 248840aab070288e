package battle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yczhou/minibattle/internal/gateway"
)

// Router handles the battle route keys.
type Router struct {
	logger *slog.Logger
}

// NewRouter creates the battle router.
func NewRouter(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{logger: logger}
}

// Register binds the battle routes on a dispatcher.
func (r *Router) Register(d *gateway.Dispatcher) {
	d.Register(gateway.RouteAttack, r.Attack)
	d.Register(gateway.RouteDie, r.Die)
	d.Register(gateway.RouteSyncScore, r.SyncScore)
}

// Attack is accepted but battle simulation is not built yet.
func (r *Router) Attack(ctx context.Context, connID string, ev gateway.Event) error {
	return r.notSupported(gateway.RouteAttack, connID)
}

// Die is accepted but battle simulation is not built yet.
func (r *Router) Die(ctx context.Context, connID string, ev gateway.Event) error {
	return r.notSupported(gateway.RouteDie, connID)
}

// SyncScore is accepted but battle simulation is not built yet.
func (r *Router) SyncScore(ctx context.Context, connID string, ev gateway.Event) error {
	return r.notSupported(gateway.RouteSyncScore, connID)
}

func (r *Router) notSupported(route, connID string) error {
	r.logger.Info("battle route requested", "route", route, "conn_id", connID)
	return fmt.Errorf("%s is not supported yet", route)
}
