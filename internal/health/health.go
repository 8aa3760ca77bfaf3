// Package health reports whether the backing stores are reachable.
package health

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"orgdir/internal/platform/redis"
	"orgdir/internal/transport/http/shared"
)

const checkTimeout = 3 * time.Second

// Checker pings the configured backends concurrently.
type Checker struct {
	logger *slog.Logger
	db     *sql.DB
	redis  *redis.Client
}

// New creates a Checker. Either backend may be nil and is then skipped.
func New(logger *slog.Logger, db *sql.DB, redisClient *redis.Client) *Checker {
	return &Checker{logger: logger, db: db, redis: redisClient}
}

// Check pings every configured backend and returns the first failure.
func (c *Checker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	if c.db != nil {
		g.Go(func() error { return c.db.PingContext(ctx) })
	}
	if c.redis != nil {
		g.Go(func() error { return c.redis.Health(ctx) })
	}
	return g.Wait()
}

// Handler serves the health endpoint: 200 when every backend answers, 503
// otherwise.
func (c *Checker) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.Check(r.Context()); err != nil {
			c.logger.ErrorContext(r.Context(), "health check failed", "error", err.Error())
			shared.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
