package main

import (
	"net/http"

	"github.com/avivash/geofeed-validator/internal/config"
	"github.com/avivash/geofeed-validator/internal/handler"
	"github.com/avivash/geofeed-validator/internal/limiter"
	"github.com/avivash/geofeed-validator/internal/logger"
	"github.com/avivash/geofeed-validator/internal/metrics"
	"github.com/avivash/geofeed-validator/internal/refdata"
	"github.com/avivash/geofeed-validator/internal/router"
	"github.com/avivash/geofeed-validator/internal/validate"
)

// Validation-as-a-service mode: POST a geofeed to /v1/validate and get
// the failure lines back as JSON. The reference index is loaded once at
// startup and shared read-only across requests.
func main() {
	appConfig, err := config.Load()
	if err != nil {
		logger.Global().Fatal().Err(err).Msg("Invalid configuration")
	}

	appLogger := setupLogger(appConfig)

	index := setupRefData(appConfig, appLogger)
	rateLimiter := setupRateLimiter(appConfig, appLogger)
	defer rateLimiter.Close()

	metricsCollector := metrics.New()
	metricsCollector.ReferenceCountries.Set(float64(index.Len()))

	// Build application layers
	validator := validate.New(index, metricsCollector, appLogger)
	validateHandler := handler.NewValidateHandler(validator, metricsCollector)
	appRouter := router.SetupRouter(validateHandler, rateLimiter, metricsCollector, appLogger)

	startServer(appConfig, appRouter, appLogger)
}

// setupLogger initializes the structured logger
func setupLogger(appConfig *config.Config) *logger.Logger {
	appLogger := logger.New(logger.Config{
		Level:  appConfig.LogLevel,
		Pretty: appConfig.LogPretty,
	})

	appLogger.Info().
		Str("port", appConfig.Port).
		Str("refdata_type", appConfig.RefDataType).
		Str("refdata_path", appConfig.RefDataPath).
		Str("rate_limiter_type", appConfig.RateLimitType).
		Float64("rate_limit", appConfig.RateLimit).
		Msg("Configuration loaded")

	return appLogger
}

// setupRefData builds the reference index from the configured backend
// Supports CSV, MySQL, and Redis sources
func setupRefData(appConfig *config.Config, log *logger.Logger) *refdata.Index {
	source, err := refdata.NewSource(refdata.SourceConfig{
		Type:          appConfig.RefDataType,
		Path:          appConfig.RefDataPath,
		MySQLDSN:      appConfig.MySQLDSN,
		RedisAddr:     appConfig.RedisAddr,
		RedisPassword: appConfig.RedisPassword,
		RedisDB:       appConfig.RedisDB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize reference data source")
	}
	defer source.Close()

	index, err := source.LoadIndex()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load reference data")
	}

	log.Info().
		Str("source", appConfig.RefDataType).
		Int("countries", index.Len()).
		Msg("Reference index loaded")
	return index
}

// setupRateLimiter initializes the rate limiter based on configuration
func setupRateLimiter(appConfig *config.Config, log *logger.Logger) limiter.Limiter {
	rateLimiter, err := limiter.NewLimiter(limiter.LimiterConfig{
		Type:              appConfig.RateLimitType,
		RequestsPerSecond: appConfig.RateLimit,
		RedisAddr:         appConfig.RedisAddr,
		RedisPassword:     appConfig.RedisPassword,
		RedisDB:           appConfig.RedisDB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize rate limiter")
	}
	return rateLimiter
}

// startServer starts the HTTP server
func startServer(appConfig *config.Config, appRouter http.Handler, log *logger.Logger) {
	addr := ":" + appConfig.Port
	log.Info().Str("addr", addr).Msg("Server listening")

	if err := http.ListenAndServe(addr, appRouter); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
