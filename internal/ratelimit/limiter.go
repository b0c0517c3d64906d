package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// FailPolicy decides the limiter's behavior when the counter store is
// unreachable.
type FailPolicy string

const (
	// FailOpen allows requests when the store cannot be consulted.
	FailOpen FailPolicy = "allow"

	// FailClosed rejects requests when the store cannot be consulted.
	FailClosed FailPolicy = "deny"
)

// CounterStore is the external counter the limiter charges requests against.
// Implementations must serialize concurrent increments to the same key: the
// post-increment count observed by each caller has to be distinct, or
// concurrent bursts would be under- or over-enforced.
type CounterStore interface {
	// Increment atomically increases the counter for key and returns the
	// post-increment count together with the key's remaining TTL. When the
	// increment creates the key, the implementation must set its expiry to
	// window in the same atomic step (or immediately after, before
	// returning).
	Increment(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)
}

// Config carries the limiter settings.
type Config struct {
	// Limit is the maximum number of requests allowed per key and window.
	// The limit is inclusive: the request that brings the count to exactly
	// Limit is allowed.
	Limit int

	// Window is the fixed window length.
	Window time.Duration

	// Policy selects fail-open or fail-closed behavior on store errors.
	Policy FailPolicy

	// KeyPrefix namespaces the counter keys in the shared store.
	KeyPrefix string
}

// Decision is the outcome of a single rate-limit check.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}

// Limiter enforces "at most N requests per caller per window". It holds no
// mutable state and is safe for concurrent use.
type Limiter struct {
	store CounterStore
	cfg   Config
}

// NewLimiter creates a Limiter over the given store.
func NewLimiter(store CounterStore, cfg Config) (*Limiter, error) {
	if cfg.Limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", cfg.Limit)
	}
	if cfg.Window <= 0 {
		return nil, fmt.Errorf("rate window must be positive, got %s", cfg.Window)
	}
	if cfg.Policy != FailOpen && cfg.Policy != FailClosed {
		return nil, fmt.Errorf("unknown fail policy %q", cfg.Policy)
	}

	return &Limiter{store: store, cfg: cfg}, nil
}

// Allow charges one request to callerKey and decides whether it may proceed.
//
// On store errors the returned Decision follows the configured fail policy
// and the error is returned alongside it so the caller can log the outage;
// Remaining and ResetAfter are zero in that case.
func (l *Limiter) Allow(ctx context.Context, callerKey string) (Decision, error) {
	key := l.cfg.KeyPrefix + ":" + callerKey

	count, ttl, err := l.store.Increment(ctx, key, l.cfg.Window)
	if err != nil {
		return Decision{
			Allowed: l.cfg.Policy == FailOpen,
			Limit:   l.cfg.Limit,
		}, fmt.Errorf("rate counter increment for %q failed: %w", callerKey, err)
	}

	remaining := l.cfg.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	if ttl <= 0 {
		ttl = l.cfg.Window
	}

	return Decision{
		Allowed:    count <= int64(l.cfg.Limit),
		Limit:      l.cfg.Limit,
		Remaining:  remaining,
		ResetAfter: ttl,
	}, nil
}
