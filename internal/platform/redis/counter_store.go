// Package redis implements the rate limiter's counter store on a Redis
// server using the go-redis client.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jortega-dev/taskboard-api/internal/config"
	"github.com/jortega-dev/taskboard-api/internal/ratelimit"
)

// CounterStore provides atomic increment-with-expiry counters backed by
// Redis. INCR serializes concurrent increments to one key on the server, so
// every caller observes a distinct post-increment count.
type CounterStore struct {
	client  *redis.Client
	timeout time.Duration
}

// Compile-time check against the limiter's store contract.
var _ ratelimit.CounterStore = (*CounterStore)(nil)

// NewCounterStore creates a CounterStore over an existing client. Every
// store round-trip is bounded by timeout so a slow Redis cannot stall the
// request path.
func NewCounterStore(client *redis.Client, timeout time.Duration) *CounterStore {
	return &CounterStore{client: client, timeout: timeout}
}

// NewClient builds a Redis client from configuration and verifies the
// connection with a ping.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}

// Increment implements ratelimit.CounterStore. It runs INCR and TTL in one
// pipeline round-trip; when the key is new (or has no expiry after a
// crashed EXPIRE), it arms the window TTL before returning.
//
// The EXPIRE is a separate command rather than part of an atomic script, so
// a crash between INCR and EXPIRE could leave an immortal counter; the TTL
// check on the next increment repairs exactly that case.
func (s *CounterStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	pipe := s.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.TTL(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("redis pipeline failed: %w", err)
	}

	count := incr.Val()
	remaining := ttl.Val()

	// A fresh key has no expiry yet (TTL reports -1), and an existing key
	// can have lost its expiry if a previous EXPIRE never ran.
	if count == 1 || remaining < 0 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return count, 0, fmt.Errorf("redis expire failed: %w", err)
		}
		remaining = window
	}

	return count, remaining, nil
}
