package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"orgdir/internal/transport/http/shared"
	dErrors "orgdir/pkg/domain-errors"
	"orgdir/pkg/requestcontext"
)

const apiKeyHeader = "X-API-Key"

// RequireAPIKey rejects requests whose X-API-Key header does not match the
// configured key. The comparison is constant-time so the key cannot be probed
// byte by byte.
func RequireAPIKey(apiKey string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(apiKeyHeader)
			if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(apiKey)) != 1 {
				logger.WarnContext(r.Context(), "unauthorized request",
					"path", r.URL.Path,
					"request_id", requestcontext.RequestID(r.Context()),
				)
				shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid API key"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
