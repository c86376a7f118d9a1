// Package ratelimiter paces calls to external providers that enforce a
// per-interval request quota.
package ratelimiter

import (
	"context"
	"log/slog"
	"time"
)

// RateLimiter allows at most limit calls per interval, sleeping callers that
// exceed the quota until the interval rolls over. It is not safe for
// concurrent use; ingest runs are single-goroutine.
type RateLimiter struct {
	limit     int
	interval  time.Duration
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// Wait blocks until the caller may proceed under the quota, or until ctx is
// done, in which case it returns the context error.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count <= rl.limit {
		return nil
	}

	sleep := rl.interval - now.Sub(rl.lastReset)
	if sleep > 0 {
		slog.Info("rate limit reached, pausing", "limit", rl.limit, "sleep", sleep)
		timer := time.NewTimer(sleep)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	rl.count = 1
	rl.lastReset = time.Now()
	return nil
}
