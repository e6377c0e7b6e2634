package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration (cmd/server only)
	Port string `validate:"required"`

	// Logging
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogPretty bool

	// Reference data configuration
	RefDataType string `validate:"oneof=csv mysql redis"`
	RefDataPath string // path to the ISO 3166-2 CSV file

	// MySQL configuration
	MySQLDSN string // Data Source Name

	// Redis configuration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Rate limiting (cmd/server only)
	RateLimitType string  `validate:"oneof=memory redis"`
	RateLimit     float64 // requests per second per client
}

// Load reads configuration from environment variables with sensible
// defaults, and validates the result. The reference data location is
// always configuration - core packages never assume a filename.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	// In production/Docker, environment variables are set directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	cfg := &Config{
		Port: getEnv("PORT", "3000"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnv("LOG_PRETTY", "true") == "true",

		RefDataType: getEnv("REFDATA_TYPE", "csv"),
		RefDataPath: getEnv("REFDATA_PATH", "./data/IP2LOCATION-ISO3166-2.CSV"),

		MySQLDSN: getEnv("MYSQL_DSN", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		RateLimitType: getEnv("RATE_LIMITER_TYPE", "memory"),
		RateLimit:     getEnvAsFloat("RATE_LIMIT", 10),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt reads an environment variable as an integer
// Returns default if not set or invalid
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat reads an environment variable as a float64
// Returns default if not set or invalid
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
