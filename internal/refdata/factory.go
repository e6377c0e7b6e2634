package refdata

import (
	"fmt"
	"strings"
)

// SourceConfig holds configuration for creating a reference data source
type SourceConfig struct {
	Type string // "csv", "mysql" or "redis"
	Path string // CSV file path (csv type only)

	// MySQL-specific config
	MySQLDSN string

	// Redis-specific config
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// NewSource creates a reference data source based on the configuration
// (factory pattern)
func NewSource(cfg SourceConfig) (Source, error) {
	sourceType := strings.ToLower(strings.TrimSpace(cfg.Type))

	switch sourceType {
	case "csv", "":
		return NewCSVSource(cfg.Path), nil

	case "mysql":
		source, err := NewMySQLSource(cfg.MySQLDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create MySQL source: %w", err)
		}
		return source, nil

	case "redis":
		source, err := NewRedisSource(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis source: %w", err)
		}
		return source, nil

	default:
		return nil, fmt.Errorf("unknown reference data source type: %s (supported: 'csv', 'mysql', 'redis')", cfg.Type)
	}
}
