// Package redis provides the Redis client used by the embedding cache.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDialTimeout = 5 * time.Second

// Config holds the cache connection settings.
type Config struct {
	Addr string
	DB   int
	// Timeout bounds dialing and the startup ping. Zero means
	// defaultDialTimeout.
	Timeout time.Duration
}

// Connect dials Redis and verifies the server answers before handing the
// client out. The cache is best effort at request time, but a dead Redis at
// startup is a deployment error worth failing on.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
