package limiter

import (
	"sync"
	"time"
)

// Limiter is the interface that all rate limiters must implement
// This allows swapping between in-memory and Redis implementations
type Limiter interface {
	// Allow checks if a request from the given client should be allowed
	// Returns true if allowed, false if rate limited
	Allow(client string) bool

	// Close cleans up any resources (Redis connections, etc.)
	Close() error
}

// window counts requests for one client within the current fixed window
type window struct {
	start time.Time
	count int
}

// MemoryLimiter is a fixed-window rate limiter keyed by client address.
// Suitable for single-instance deployments; use the Redis limiter when
// several instances must share one budget.
type MemoryLimiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	limit     int
	span      time.Duration
	lastSweep time.Time
}

// NewMemoryLimiter creates an in-memory limiter allowing requestsPerSecond
// requests per client. Fractional rates widen the window instead of
// rounding the limit to zero: 0.2 req/s becomes 1 request per 5 seconds.
func NewMemoryLimiter(requestsPerSecond float64) *MemoryLimiter {
	span := time.Second
	limit := int(requestsPerSecond)
	if requestsPerSecond < 1.0 {
		span = time.Duration(float64(time.Second) / requestsPerSecond)
		limit = 1
	}
	return &MemoryLimiter{
		windows:   make(map[string]*window),
		limit:     limit,
		span:      span,
		lastSweep: time.Now(),
	}
}

// Allow implements the Limiter interface
func (l *MemoryLimiter) Allow(client string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.maybeSweep(now)

	w, ok := l.windows[client]
	if !ok || now.Sub(w.start) >= l.span {
		l.windows[client] = &window{start: now, count: 1}
		return true
	}

	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// maybeSweep drops expired windows so idle clients do not accumulate.
// Runs at most once per minute; must be called with the mutex held.
func (l *MemoryLimiter) maybeSweep(now time.Time) {
	if now.Sub(l.lastSweep) < time.Minute {
		return
	}
	for client, w := range l.windows {
		if now.Sub(w.start) >= l.span {
			delete(l.windows, client)
		}
	}
	l.lastSweep = now
}

// Close implements the Limiter interface
// Nothing to release for the in-memory implementation
func (l *MemoryLimiter) Close() error {
	return nil
}
