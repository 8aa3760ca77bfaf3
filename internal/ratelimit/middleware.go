package ratelimit

import (
	"log/slog"
	"net"
	"net/http"

	"orgdir/internal/platform/metrics"
	"orgdir/internal/transport/http/shared"
	dErrors "orgdir/pkg/domain-errors"
)

// Middleware enforces the limiter per client. Clients are keyed by API key
// when one is presented, falling back to the remote address. Redis outages
// fail open: a directory that serves reads is more useful rate-unlimited than
// down.
func Middleware(l *Limiter, m *metrics.Metrics, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := l.Allow(r.Context(), clientKey(r))
			if err != nil {
				logger.WarnContext(r.Context(), "rate limiter unavailable, allowing request", "error", err.Error())
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				if m != nil {
					m.IncRateLimitRejection()
				}
				shared.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "rate limit exceeded"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if key := r.Header.Get("X-API-Key"); key != "" {
		return key
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
