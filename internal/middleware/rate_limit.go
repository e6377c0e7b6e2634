package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/avivash/geofeed-validator/internal/limiter"
)

// RateLimitMiddleware enforces rate limiting per client IP (returns 429 when exceeded)
func RateLimitMiddleware(lim limiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// chi's RealIP middleware runs earlier and rewrites RemoteAddr
			// from X-Real-IP / X-Forwarded-For when behind a proxy
			if !lim.Allow(r.RemoteAddr) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Rate limit exceeded. Please try again later.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
