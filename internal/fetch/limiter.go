// Package fetch - limiter.go provides a cooperative per-host rate limiter.
package fetch

import (
	"context"
	"sync"
	"time"
)

// RateLimiter enforces a minimum delay between successive requests to the
// same host. It is cooperative: callers Wait before each request, and the
// limiter tracks the last request time per host.
type RateLimiter struct {
	mu    sync.Mutex
	delay time.Duration
	last  map[string]time.Time
}

// NewRateLimiter creates a limiter with the given minimum inter-request delay.
func NewRateLimiter(delay time.Duration) *RateLimiter {
	return &RateLimiter{
		delay: delay,
		last:  make(map[string]time.Time),
	}
}

// Wait blocks until the host's minimum delay has elapsed since the previous
// request, or the context is cancelled. The reservation is taken up front so
// concurrent callers on the same host queue rather than burst.
func (l *RateLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	now := time.Now()
	next := l.last[host].Add(l.delay)
	if next.Before(now) {
		next = now
	}
	l.last[host] = next
	l.mu.Unlock()

	wait := time.Until(next)
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
