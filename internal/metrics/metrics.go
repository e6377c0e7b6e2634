package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Validation Metrics
	RecordsChecked     prometheus.Counter
	RecordsInvalid     *prometheus.CounterVec
	FeedsProcessed     *prometheus.CounterVec
	StructuralErrors   prometheus.Counter
	ReferenceCountries prometheus.Gauge
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint", "status"},
		),

		RecordsChecked: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "geofeed_records_checked_total",
				Help: "Total number of feed records run through validation",
			},
		),

		RecordsInvalid: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geofeed_records_invalid_total",
				Help: "Total number of invalid feed records by failure reason",
			},
			[]string{"reason"},
		),

		FeedsProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geofeed_feeds_processed_total",
				Help: "Total number of feeds processed, by outcome",
			},
			[]string{"outcome"}, // clean, invalid, parse_error
		),

		StructuralErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "geofeed_structural_errors_total",
				Help: "Total number of feeds aborted by a structural parse error",
			},
		),

		ReferenceCountries: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "geofeed_reference_countries",
				Help: "Number of countries in the loaded reference index",
			},
		),
	}
}
