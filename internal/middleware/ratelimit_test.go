package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "ratelimit:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestRateLimiterAllow(t *testing.T) {
	client := testValkeyClient(t)
	rl := NewRateLimiter(client, 3, 1*time.Minute)

	ctx := context.Background()

	// First 3 requests should be allowed.
	for i := 0; i < 3; i++ {
		if !rl.Allow(ctx, "test-ip") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	// 4th request should be denied.
	if rl.Allow(ctx, "test-ip") {
		t.Error("4th request should be rate-limited")
	}

	// Different IP should still be allowed.
	if !rl.Allow(ctx, "other-ip") {
		t.Error("different IP should be allowed")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	client := testValkeyClient(t)
	rl := NewRateLimiter(client, 2, 200*time.Millisecond)

	ctx := context.Background()

	// Use up the limit.
	rl.Allow(ctx, "expiry-ip")
	rl.Allow(ctx, "expiry-ip")

	if rl.Allow(ctx, "expiry-ip") {
		t.Error("should be rate-limited")
	}

	// Wait for the fixed window to expire.
	time.Sleep(300 * time.Millisecond)

	if !rl.Allow(ctx, "expiry-ip") {
		t.Error("should be allowed after window expires")
	}
}

func TestRateLimiterRemaining(t *testing.T) {
	client := testValkeyClient(t)
	rl := NewRateLimiter(client, 5, 1*time.Minute)

	ctx := context.Background()

	if got := rl.Remaining(ctx, "remaining-ip"); got != 5 {
		t.Errorf("fresh key remaining: got %d, want 5", got)
	}

	rl.Allow(ctx, "remaining-ip")
	rl.Allow(ctx, "remaining-ip")

	if got := rl.Remaining(ctx, "remaining-ip"); got != 3 {
		t.Errorf("remaining after 2 requests: got %d, want 3", got)
	}

	for i := 0; i < 5; i++ {
		rl.Allow(ctx, "remaining-ip")
	}
	if got := rl.Remaining(ctx, "remaining-ip"); got != 0 {
		t.Errorf("exhausted key remaining: got %d, want 0", got)
	}
}

func TestRateLimiterFailsOpen(t *testing.T) {
	// Client pointed at nothing — every call errors, limiter must allow.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	rl := NewRateLimiter(client, 1, 1*time.Minute)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if !rl.Allow(ctx, "any-ip") {
			t.Fatal("limiter should fail open when Valkey is unreachable")
		}
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	client := testValkeyClient(t)
	rl := NewRateLimiter(client, 2, 1*time.Minute)

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// First 2 requests should succeed.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-logos", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want 200", i+1, rr.Code)
		}
	}

	// 3rd request should be rate-limited with a JSON body.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-logos", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("got status %d, want 429", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q, want application/json", ct)
	}

	// A different client keeps its own counter.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/generate-logos", nil)
	req.RemoteAddr = "192.168.1.2:12345"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("other client: got status %d, want 200", rr.Code)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{
			name:       "x-forwarded-for single",
			xff:        "10.0.0.1",
			remoteAddr: "192.168.1.1:1234",
			want:       "10.0.0.1",
		},
		{
			name:       "x-forwarded-for multiple",
			xff:        "10.0.0.1, 172.16.0.1, 192.168.1.1",
			remoteAddr: "192.168.1.1:1234",
			want:       "10.0.0.1",
		},
		{
			name:       "x-real-ip",
			xri:        "10.0.0.2",
			remoteAddr: "192.168.1.1:1234",
			want:       "10.0.0.2",
		},
		{
			name:       "remote addr only",
			remoteAddr: "192.168.1.1:1234",
			want:       "192.168.1.1",
		},
		{
			name:       "remote addr no port",
			remoteAddr: "192.168.1.1",
			want:       "192.168.1.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			got := clientIP(req)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
