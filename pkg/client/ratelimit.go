package client

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter paces requests in multi-target mode so a list scan does
// not hammer the host.
type RateLimiter struct {
	limiter  *rate.Limiter
	minDelay time.Duration
}

// NewRateLimiter creates a new rate limiter
// requestsPerSecond: max requests per second
// minDelay: minimum delay between requests
func NewRateLimiter(requestsPerSecond int, minDelay time.Duration) *RateLimiter {
	return &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		minDelay: minDelay,
	}
}

// Wait blocks until a request can be made, respecting rate limits
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if err := rl.limiter.Wait(ctx); err != nil {
		return err
	}

	if rl.minDelay > 0 {
		select {
		case <-time.After(rl.minDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
