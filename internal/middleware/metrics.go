package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/avivash/geofeed-validator/internal/metrics"
	"github.com/go-chi/chi/v5/middleware"
)

// MetricsMiddleware records Prometheus metrics for each request
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(ww.Status())

			m.HTTPRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(duration)
		})
	}
}
