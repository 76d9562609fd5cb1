package middleware

import (
	"net/http"
	"sync"
	"time"

	"partsdesk/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

// rateLimiter is a per-IP sliding-window limiter shared by the login and
// general API configurations.
type rateLimiter struct {
	limit   int
	window  time.Duration
	message string

	entries map[string]*rateEntry
	mu      sync.Mutex
}

func newRateLimiter(limit int, window time.Duration, message string) *rateLimiter {
	rl := &rateLimiter{
		limit:   limit,
		window:  window,
		message: message,
		entries: make(map[string]*rateEntry),
	}
	go rl.purgeLoop()
	return rl
}

func (rl *rateLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rl.mu.Lock()
		entry, exists := rl.entries[ip]
		if !exists {
			entry = &rateEntry{}
			rl.entries[ip] = entry
		}
		rl.mu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			// Reset sliding window
			entry.count = 0
			entry.windowEnd = now.Add(rl.window)
		}

		entry.count++
		if entry.count > rl.limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(rl.message))
			return
		}
		c.Next()
	}
}

// purgeLoop drops expired entries so IPs that never return do not accumulate.
func (rl *rateLimiter) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0

		rl.mu.Lock()
		for ip, entry := range rl.entries {
			entry.mu.Lock()
			if now.After(entry.windowEnd) {
				delete(rl.entries, ip)
				purged++
			}
			entry.mu.Unlock()
		}
		remaining := len(rl.entries)
		rl.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("purged", purged).
				Int("remaining", remaining).
				Msg("rate limiter entries purged")
		}
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newRateLimiter(20, time.Minute, "Too many login attempts. Try again in a minute.").handler()
}

// RateLimiter returns the general-purpose API limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newRateLimiter(limit, window, "Too many requests. Try again shortly.").handler()
}
