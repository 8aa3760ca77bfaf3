package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAPIKey(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := RequireAPIKey("supersecret", logger)(next)

	t.Run("missing key is unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/organizations/search?q=a", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"unauthorized","message":"invalid API key"}`, rec.Body.String())
	})

	t.Run("wrong key is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/organizations/search?q=a", nil)
		req.Header.Set("X-API-Key", "wrong")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct key passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/organizations/search?q=a", nil)
		req.Header.Set("X-API-Key", "supersecret")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
