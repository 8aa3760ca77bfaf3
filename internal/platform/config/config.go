package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration. Values are threaded into
// constructors from main; nothing reads the environment after startup.
type Server struct {
	Addr        string
	DatabaseURL string
	APIKey      string
	RedisURL    string
	Debug       bool

	// Rate limiting (active only when RedisURL is set).
	RateLimit  int
	RateWindow time.Duration

	ShutdownTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("ORGDIR_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Server{
		Addr:            addr,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		APIKey:          os.Getenv("ORGDIR_API_KEY"),
		RedisURL:        os.Getenv("REDIS_URL"),
		Debug:           os.Getenv("ORGDIR_DEBUG") == "true",
		RateLimit:       envInt("ORGDIR_RATE_LIMIT", 100),
		RateWindow:      envDuration("ORGDIR_RATE_WINDOW", time.Minute),
		ShutdownTimeout: envDuration("ORGDIR_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil {
			return v
		}
	}
	return fallback
}
