// Command server runs the organization directory HTTP API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"orgdir/internal/directory/handler"
	"orgdir/internal/directory/service"
	pgstore "orgdir/internal/directory/store/postgres"
	"orgdir/internal/health"
	"orgdir/internal/platform/config"
	"orgdir/internal/platform/httpserver"
	"orgdir/internal/platform/logger"
	"orgdir/internal/platform/metrics"
	"orgdir/internal/platform/middleware"
	"orgdir/internal/platform/postgres"
	"orgdir/internal/platform/redis"
	"orgdir/internal/ratelimit"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Debug)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err.Error())
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	if cfg.APIKey == "" {
		return errors.New("ORGDIR_API_KEY must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := redis.New(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	} else {
		log.Warn("redis not configured, rate limiting disabled")
	}

	m := metrics.New()
	store := pgstore.NewStore(db)
	svc := service.New(store, store, store,
		service.WithLogger(log),
		service.WithMetrics(m),
	)

	limiter := ratelimit.New(redisClient, cfg.RateLimit, cfg.RateWindow)
	checker := health.New(log, db, redisClient)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Latency(m))

	r.Get("/health", checker.Handler())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAPIKey(cfg.APIKey, log))
		r.Use(ratelimit.Middleware(limiter, m, log))
		handler.New(svc, log).Register(r)
	})

	srv := httpserver.New(cfg.Addr, r)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
