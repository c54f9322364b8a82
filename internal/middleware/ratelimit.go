// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// rateKeyPrefix is the Valkey key prefix for generation counters.
const rateKeyPrefix = "ratelimit:"

// RateLimiter provides per-IP rate limiting using a fixed window counter
// in Valkey. The counter key gets its TTL on the first request of the
// window; subsequent requests only increment it, so the window never
// slides. State in Valkey survives server restarts.
type RateLimiter struct {
	client *redis.Client
	limit  int           // max requests per window
	window time.Duration // fixed window duration
}

// NewRateLimiter creates a rate limiter allowing limit requests per window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: limit, window: window}
}

// Allow checks whether the given key is within the rate limit. Fails open
// when Valkey is unreachable so logo generation keeps working.
func (rl *RateLimiter) Allow(ctx context.Context, key string) bool {
	count, err := rl.client.Incr(ctx, rateKeyPrefix+key).Result()
	if err != nil {
		slog.Warn("rate limiter unavailable, allowing request", "error", err)
		return true
	}

	if count == 1 {
		if err := rl.client.Expire(ctx, rateKeyPrefix+key, rl.window).Err(); err != nil {
			slog.Warn("rate limiter expire failed", "key", key, "error", err)
		}
	}

	return count <= int64(rl.limit)
}

// Remaining reports how many requests the key has left in the current window.
func (rl *RateLimiter) Remaining(ctx context.Context, key string) int {
	count, err := rl.client.Get(ctx, rateKeyPrefix+key).Int()
	if err != nil {
		return rl.limit
	}
	if count >= rl.limit {
		return 0
	}
	return rl.limit - count
}

// Middleware returns an HTTP middleware that rate-limits by client IP.
// Rejected requests receive a JSON 429 matching the API envelope.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.Allow(r.Context(), ip) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   fmt.Sprintf("Rate limit exceeded. Maximum %d generations per %s.", rl.limit, rl.window),
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the client's IP address, checking X-Forwarded-For
// and X-Real-IP headers for proxied requests.
func clientIP(r *http.Request) string {
	// Check X-Forwarded-For first (may contain multiple IPs).
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Take the first (leftmost) IP — the original client.
		if idx := strings.IndexByte(xff, ','); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	// Check X-Real-IP.
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to RemoteAddr (strip port).
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
