package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"circles-of-care-site/config"
	"circles-of-care-site/internal/delivery/http/response"
	"circles-of-care-site/pkg/logger"
	"circles-of-care-site/pkg/redis"
	"circles-of-care-site/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis (default: "rl:ip:")
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
	// Only count requests with these methods; empty counts every request
	Methods []string
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// memoryStore is the fallback used when Redis is unavailable. Expired entries
// are swept on access, at most once per sweepEvery.
type memoryStore struct {
	entries    sync.Map
	sweepMu    sync.Mutex
	lastSweep  time.Time
	sweepEvery time.Duration
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// GlobalRateLimitConfig applies to every route
func GlobalRateLimitConfig(cfg *config.Config) RateLimitConfig {
	return RateLimitConfig{
		Limit:      cfg.RateLimitGlobalThreshold,
		Window:     cfg.RateLimitWindow(),
		KeyPrefix:  "rl:ip:",
		FailClosed: false, // Fail open by default for availability
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// ContactRateLimitConfig throttles inquiry submissions per client IP. Page
// views of the contact form are not counted.
func ContactRateLimitConfig(cfg *config.Config) RateLimitConfig {
	return RateLimitConfig{
		Limit:      cfg.RateLimitContactThreshold,
		Window:     cfg.RateLimitWindow(),
		KeyPrefix:  "rl:contact:",
		FailClosed: false,
		Methods:    []string{http.MethodPost},
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// RateLimitMiddleware creates a rate limiting middleware with the given config
// Uses Redis when available, falls back to in-memory when not
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	store := &memoryStore{sweepEvery: 5 * time.Minute}
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}

	return func(c *gin.Context) {
		if !config.counts(c.Request.Method) {
			c.Next()
			return
		}

		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		var count int
		var resetAt time.Time
		var err error

		// Try Redis first
		if redisClient := redis.Client(); redisClient != nil {
			count, resetAt, err = checkRateLimitRedis(c.Request.Context(), redisClient, fullKey, config)
			if err != nil {
				logger.Log.Warn("Rate limit store unavailable", "key_prefix", config.KeyPrefix, "error", err)
				if config.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = store.hit(fullKey, config.Window, now)
			}
		} else {
			count, resetAt = store.hit(fullKey, config.Window, now)
		}

		if count > config.Limit {
			retryAfter := int(resetAt.Sub(now).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			security.DefaultLogger().LogRateLimitTriggered(c.Request.Context(),
				c.ClientIP(), c.Request.UserAgent(), c.GetString(RequestIDKey), c.FullPath(), config.KeyPrefix)

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		remaining := config.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		c.Next()
	}
}

func (config RateLimitConfig) counts(method string) bool {
	if len(config.Methods) == 0 {
		return true
	}
	for _, m := range config.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// checkRateLimitRedis checks rate limit using Redis with atomic Lua script
func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	// Parse result [count, ttl]
	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

// hit counts one request for key and returns the count in the current window
func (s *memoryStore) hit(key string, window time.Duration, now time.Time) (int, time.Time) {
	s.sweep(now)

	entryI, _ := s.entries.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++

	return entry.count, entry.resetAt
}

func (s *memoryStore) sweep(now time.Time) {
	s.sweepMu.Lock()
	if now.Sub(s.lastSweep) < s.sweepEvery {
		s.sweepMu.Unlock()
		return
	}
	s.lastSweep = now
	s.sweepMu.Unlock()

	s.entries.Range(func(key, value interface{}) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.After(entry.resetAt) {
			s.entries.Delete(key)
		}
		entry.mu.Unlock()
		return true
	})
}
