// Package ratelimit implements a fixed-window per-client limiter backed by
// Redis, shared across replicas. When Redis is not configured the limiter is
// nil and the middleware passes everything through.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"orgdir/internal/platform/redis"
)

// Limiter counts requests per key inside fixed windows.
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// New creates a Limiter. Returns nil when the client is nil so callers can
// treat an unconfigured Redis as "no rate limiting".
func New(client *redis.Client, limit int, window time.Duration) *Limiter {
	if client == nil {
		return nil
	}
	return &Limiter{client: client, limit: limit, window: window}
}

// Allow increments the caller's counter for the current window and reports
// whether the request is within the limit. The counter key carries the window
// number, so stale windows expire on their own.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := time.Now().UnixNano() / int64(l.window)
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, bucket)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	return incr.Val() <= int64(l.limit), nil
}
