package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sweetline/shop-api/internal/utils"
)

// RateLimiter caps requests per client address over a sliding window. Each
// address keeps the timestamps of its recent requests; timestamps older than
// the window are pruned on every check.
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	max      int
	window   time.Duration
}

// NewRateLimiter constructs a RateLimiter allowing max requests per window.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		max:      max,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

// Allow records a request for ip and reports whether it is within quota.
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-r.window)

	kept := r.requests[ip][:0]
	for _, t := range r.requests[ip] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= r.max {
		r.requests[ip] = kept
		return false
	}

	r.requests[ip] = append(kept, now)
	return true
}

// cleanup drops addresses whose entire window has expired so the map does not
// grow without bound.
func (r *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		r.mu.Lock()
		cutoff := time.Now().Add(-r.window)
		for ip, times := range r.requests {
			if len(times) == 0 || !times[len(times)-1].After(cutoff) {
				delete(r.requests, ip)
			}
		}
		r.mu.Unlock()
	}
}

// Handle returns a Gin middleware that rejects over-quota clients before any
// handler runs.
func (r *RateLimiter) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.Allow(c.ClientIP()) {
			utils.Error(c, 429, "Too many requests, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
