package config

import (
	"context"
	"os"
	"time"
)

// WithTimeout returns a context with a 10s timeout (generous for managed
// Postgres cold starts).
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// WithTimeoutFrom bounds an existing request context the same way.
func WithTimeoutFrom(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, 10*time.Second)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
