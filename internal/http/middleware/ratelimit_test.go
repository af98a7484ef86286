package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func TestKeyByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add", nil)
	// Ensure a deterministic IP for ClientIP()
	req.RemoteAddr = net.JoinHostPort("203.0.113.9", "12345")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	if key := KeyByIP()(c); key != "ip:203.0.113.9" {
		t.Fatalf("expected ip-based key; got %q", key)
	}
}

func TestNewRateLimiter_BurstCoercion_AndGetVisitorReuse(t *testing.T) {
	rl := NewRateLimiter(2.0, 0, KeyByIP()) // burst<=0 coerced to 1
	if rl.burst != 1 {
		t.Fatalf("burst coercion failed, got %d", rl.burst)
	}

	// First call creates limiter
	lim := rl.getVisitor("k1")
	if lim == nil {
		t.Fatalf("expected limiter")
	}
	// Second call reuses same limiter (pointer equality via map lookup)
	if got := rl.getVisitor("k1"); got != lim {
		t.Fatalf("expected same limiter instance to be reused")
	}
}

func TestRateLimiter_getVisitor_GC(t *testing.T) {
	rl := NewRateLimiter(1.0, 1, KeyByIP())
	// Make TTL immediate so anything old gets evicted
	rl.ttl = 1 * time.Nanosecond

	// Seed an old visitor
	rl.mu.Lock()
	rl.visitors["old"] = &visitor{
		limiter:  rate.NewLimiter(1, 1),
		lastSeen: time.Now().Add(-time.Hour),
	}
	// Force cleanup to run on next getVisitor by setting cleanupN to 4999
	rl.cleanupN = 4999
	rl.mu.Unlock()

	// Trigger cleanup by calling getVisitor for a different key
	_ = rl.getVisitor("new")

	rl.mu.Lock()
	_, existsOld := rl.visitors["old"]
	_, existsNew := rl.visitors["new"]
	rl.mu.Unlock()

	if existsOld {
		t.Fatalf("expected 'old' visitor to be evicted by opportunistic GC")
	}
	if !existsNew {
		t.Fatalf("expected 'new' visitor to be created")
	}
}

func TestNewRateLimiter_DefaultKeyAndRetryAfter(t *testing.T) {
	rl := NewRateLimiter(2.0, 5, nil)
	if rl.keyFn == nil {
		t.Fatalf("nil keyFn should default to KeyByIP")
	}
	cases := map[float64]string{2.0: "1", 1.0: "1", 0.5: "2", 0.1: "10", 0: "60"}
	for rps, want := range cases {
		if got := retryAfterSeconds(rps); got != want {
			t.Fatalf("retryAfterSeconds(%v) = %q; want %q", rps, got, want)
		}
	}
}

func TestRateLimiter_Handler_AllowDenyAndPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// rps=1, burst=1 -> first immediate request allowed, second denied
	rl := NewRateLimiter(1.0, 1, KeyByIP())

	// Router with only the rate limiter and a simple 200 handler
	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	// First request (should be allowed)
	w1 := httptest.NewRecorder()
	req1 := httptest.NewRequest(http.MethodGet, "/ok", nil)
	r.ServeHTTP(w1, req1)
	if w1.Code != http.StatusOK {
		t.Fatalf("first request should be allowed, got %d", w1.Code)
	}

	// Second immediate request (should be 429)
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ok", nil)
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be rate-limited, got %d", w2.Code)
	}
	if got := w2.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("expected Retry-After=1, got %q", got)
	}
	var body map[string]any
	if err := json.Unmarshal(w2.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	errObj, _ := body["error"].(map[string]any)
	if errObj["Too Many Requests"] != "rate limit exceeded" {
		t.Fatalf("unexpected JSON body: %v", body)
	}

	// A different client IP has its own bucket.
	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req3.RemoteAddr = net.JoinHostPort("198.51.100.7", "4000")
	r.ServeHTTP(w3, req3)
	if w3.Code != http.StatusOK {
		t.Fatalf("other client should be allowed, got %d", w3.Code)
	}
}
