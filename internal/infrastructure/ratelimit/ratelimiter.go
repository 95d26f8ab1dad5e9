package ratelimit

import (
	"context"
	"time"
)

// Store is the counter backend for fixed-window limiting.
type Store interface {
	// Incr increments the counter at key and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
	// Expire sets the key TTL.
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// Result reports the outcome of a rate limit check.
type Result struct {
	Allowed   bool
	HourCount int64
	DayCount  int64
}

// Limiter decides whether a caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
