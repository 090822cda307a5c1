package requests

import (
	"context"
	"sync"
	"time"

	"lolscope/pkg/config"
)

// Single riot rate limiting.
type RiotLimit struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full riot rate limit, containing all the constraints.
type RateLimiter struct {
	windows []*RiotLimit
	mu      sync.Mutex
	now     func() time.Time
}

// NewRateLimiter creates a limiter enforcing every window at once.
// Windows with a non positive count are ignored.
func NewRateLimiter(limits ...config.RiotLimit) *RateLimiter {
	r := &RateLimiter{now: time.Now}
	for _, limit := range limits {
		if limit.Count <= 0 || limit.ResetInterval <= 0 {
			continue
		}
		r.windows = append(r.windows, &RiotLimit{
			limit:         limit.Count,
			resetInterval: limit.ResetInterval,
			lastReset:     r.now(),
		})
	}
	return r
}

// Wait blocks until a request fits in every window or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		waitTime, ok := r.reserve()
		if ok {
			return nil
		}

		timer := time.NewTimer(waitTime)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// reserve takes a slot, or returns how long until one may be free.
func (r *RateLimiter) reserve() (time.Duration, bool) {
	// Locks the limiter.
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	// Check the limits.
	if !r.checkLimits() {
		return r.waitTime(), false
	}

	r.incrementCounts()
	return 0, true
}

// Reset the count.
func (r *RateLimiter) resetCounts() {
	now := r.now()
	// Loop through each window and verify if can reset.
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if the window is on it's limits.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Loop through each window and increment the counter.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// waitTime returns the time until every exhausted window resets.
func (r *RateLimiter) waitTime() time.Duration {
	var waitTime time.Duration
	now := r.now()
	for _, window := range r.windows {
		// If it's not this window that is limited, just continue.
		if window.count < window.limit {
			continue
		}

		waitTill := window.resetInterval - now.Sub(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}
	return waitTime
}
