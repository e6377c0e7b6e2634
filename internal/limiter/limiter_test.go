package limiter

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
)

// TestMemoryLimiter_AllowsWithinLimit tests that requests under the
// limit pass in a single window
func TestMemoryLimiter_AllowsWithinLimit(t *testing.T) {
	lim := NewMemoryLimiter(5)
	defer lim.Close()

	for i := 0; i < 5; i++ {
		if !lim.Allow("1.2.3.4") {
			t.Errorf("expected request %d to be allowed", i+1)
		}
	}
}

// TestMemoryLimiter_BlocksOverLimit tests rejection once the window is full
func TestMemoryLimiter_BlocksOverLimit(t *testing.T) {
	lim := NewMemoryLimiter(2)
	defer lim.Close()

	lim.Allow("1.2.3.4")
	lim.Allow("1.2.3.4")

	if lim.Allow("1.2.3.4") {
		t.Error("expected third request in the window to be blocked")
	}
}

// TestMemoryLimiter_PerClient tests that clients do not share a budget
func TestMemoryLimiter_PerClient(t *testing.T) {
	lim := NewMemoryLimiter(1)
	defer lim.Close()

	if !lim.Allow("1.2.3.4") {
		t.Error("expected first client to be allowed")
	}
	if !lim.Allow("5.6.7.8") {
		t.Error("expected second client to have its own budget")
	}
	if lim.Allow("1.2.3.4") {
		t.Error("expected first client to be exhausted")
	}
}

// TestMemoryLimiter_FractionalRate tests that fractional rates allow at
// least one request instead of rounding the limit down to zero
func TestMemoryLimiter_FractionalRate(t *testing.T) {
	lim := NewMemoryLimiter(0.2)
	defer lim.Close()

	if !lim.Allow("1.2.3.4") {
		t.Error("expected the first request to be allowed at a fractional rate")
	}
	if lim.Allow("1.2.3.4") {
		t.Error("expected the second request in the widened window to be blocked")
	}
}

// TestRedisLimiter_Allow tests the Redis-backed limiter against miniredis
func TestRedisLimiter_Allow(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	// Fractional rate widens the window to 5 seconds, so the test does
	// not race a window boundary
	lim, err := NewRedisLimiter(mr.Addr(), "", 0, 0.2)
	if err != nil {
		t.Fatalf("failed to create Redis limiter: %v", err)
	}
	defer lim.Close()

	if !lim.Allow("1.2.3.4") {
		t.Error("expected first request to be allowed")
	}
	if lim.Allow("1.2.3.4") {
		t.Error("expected second request in the window to be blocked")
	}
}

// TestRedisLimiter_FailsOpen tests that Redis errors do not block traffic
func TestRedisLimiter_FailsOpen(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	lim, err := NewRedisLimiter(mr.Addr(), "", 0, 1)
	if err != nil {
		t.Fatalf("failed to create Redis limiter: %v", err)
	}
	defer lim.Close()

	// Kill the backend, the limiter should allow rather than block
	mr.Close()

	if !lim.Allow("1.2.3.4") {
		t.Error("expected limiter to fail open when Redis is down")
	}
}

// TestNewLimiter_Factory tests backend selection
func TestNewLimiter_Factory(t *testing.T) {
	lim, err := NewLimiter(LimiterConfig{Type: "memory", RequestsPerSecond: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := lim.(*MemoryLimiter); !ok {
		t.Errorf("expected *MemoryLimiter, got %T", lim)
	}

	if _, err := NewLimiter(LimiterConfig{Type: "carrier-pigeon"}); err == nil {
		t.Error("expected error for unknown limiter type")
	}
}
