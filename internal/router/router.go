package router

import (
	"net/http"

	"github.com/avivash/geofeed-validator/internal/handler"
	"github.com/avivash/geofeed-validator/internal/limiter"
	"github.com/avivash/geofeed-validator/internal/logger"
	"github.com/avivash/geofeed-validator/internal/metrics"
	custommiddleware "github.com/avivash/geofeed-validator/internal/middleware"
	v1 "github.com/avivash/geofeed-validator/internal/router/v1"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter creates and configures the Chi router with all middleware and routes
//
// Parameters:
//   - validateHandler: the feed validation handler
//   - rateLimiter: the rate limiter (memory or Redis)
//   - m: metrics collector
//   - log: structured logger
//
// Returns:
//   - chi.Router: configured router ready to use
func SetupRouter(validateHandler *handler.ValidateHandler, rateLimiter limiter.Limiter, m *metrics.Metrics, log *logger.Logger) chi.Router {
	r := chi.NewRouter()

	// Order matters: RequestID first, then logging, then rate limiting
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.LoggingMiddleware(log))
	r.Use(middleware.Recoverer)
	r.Use(custommiddleware.RateLimitMiddleware(rateLimiter))
	r.Use(custommiddleware.MetricsMiddleware(m))

	// Versioned API routes
	r.Mount("/v1", v1.SetupRoutes(validateHandler))

	// Health check endpoint - used by load balancers and monitoring
	r.Get("/health", healthCheckHandler)

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// healthCheckHandler returns 200 OK if the service is running
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
