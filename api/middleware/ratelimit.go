package middleware

import (
	"net/http"
	"sync"
	"time"

	"lolscope/pkg/messages"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Limiters idle for longer are dropped by Cleanup.
const limiterIdleTimeout = 10 * time.Minute

// ClientLimiter keeps a token bucket per client ip.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter allows perSecond requests per client with the given burst.
// A non positive rate disables the limit.
func NewClientLimiter(perSecond float64, burst int) *ClientLimiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}

	return &ClientLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     limit,
		burst:    max(burst, 1),
		now:      time.Now,
	}
}

// Allow consumes a token of the client.
func (cl *ClientLimiter) Allow(ip string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := cl.now()
	entry, exists := cl.limiters[ip]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(cl.rate, cl.burst)}
		cl.limiters[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// Cleanup drops the limiters of idle clients and returns how many remain.
func (cl *ClientLimiter) Cleanup() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cutoff := cl.now().Add(-limiterIdleTimeout)
	for ip, entry := range cl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(cl.limiters, ip)
		}
	}
	return len(cl.limiters)
}

// StartCleanup runs Cleanup periodically until done is closed.
func (cl *ClientLimiter) StartCleanup(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cl.Cleanup()
			case <-done:
				return
			}
		}
	}()
}

// RateLimit rejects clients over their limit with 429.
func RateLimit(limiter *ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": messages.TooManyRequests})
			return
		}
		c.Next()
	}
}
