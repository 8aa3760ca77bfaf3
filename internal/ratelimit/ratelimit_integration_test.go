//go:build integration

package ratelimit_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgdir/internal/platform/redis"
	"orgdir/internal/ratelimit"
	"orgdir/pkg/testutil/containers"
)

func newLimiter(t *testing.T, limit int, window time.Duration) *ratelimit.Limiter {
	t.Helper()
	rc := containers.NewRedisContainer(t)
	require.NoError(t, rc.FlushAll(context.Background()))

	client, err := redis.New(context.Background(), rc.Addr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return ratelimit.New(client, limit, window)
}

func TestLimiterAllow(t *testing.T) {
	ctx := context.Background()
	l := newLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, err := l.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be within the limit", i+1)
	}

	allowed, err := l.Allow(ctx, "client-a")
	require.NoError(t, err)
	assert.False(t, allowed, "fourth request should exceed the limit")

	// Other clients keep their own budget.
	allowed, err = l.Allow(ctx, "client-b")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLimiterWindowReset(t *testing.T) {
	ctx := context.Background()
	l := newLimiter(t, 1, time.Second)

	allowed, err := l.Allow(ctx, "client-a")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = l.Allow(ctx, "client-a")
	require.NoError(t, err)
	require.False(t, allowed)

	time.Sleep(1100 * time.Millisecond)

	allowed, err = l.Allow(ctx, "client-a")
	require.NoError(t, err)
	assert.True(t, allowed, "a new window should start after the old one expires")
}

func TestMiddleware(t *testing.T) {
	l := newLimiter(t, 1, time.Minute)
	logger := slog.New(slog.DiscardHandler)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := ratelimit.Middleware(l, nil, logger)(next)

	do := func(apiKey string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/organizations/1", nil)
		if apiKey != "" {
			req.Header.Set("X-API-Key", apiKey)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do("key-1").Code)
	rec := do("key-1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"rate_limited","message":"rate limit exceeded"}`, rec.Body.String())

	// A different key is a different budget.
	assert.Equal(t, http.StatusOK, do("key-2").Code)
}
