package refdata

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// regionKeyPrefix namespaces the reference data inside Redis.
// Key format: regions:<country code>, value: a Redis set of region codes.
// Example: regions:US -> {"CA", "NY", ...}
const regionKeyPrefix = "regions:"

// RedisSource implements Source using Redis sets, one set per country.
// Suitable when several validator instances share one reference dataset
// that is refreshed out of band (see cmd/load-redis).
type RedisSource struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisSource creates a Redis source
//
// Parameters:
//   - addr: Redis server address (e.g., "localhost:6379")
//   - password: Redis password (empty string if no password)
//   - db: Redis database number (0-15, default is 0)
//
// Returns:
//   - *RedisSource: pointer to the created source
//   - error: any error that occurred during connection
func NewRedisSource(addr, password string, db int) (*RedisSource, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSource{
		client: client,
		ctx:    ctx,
	}, nil
}

// LoadIndex reads every regions:* set and builds the index
func (s *RedisSource) LoadIndex() (*Index, error) {
	keys, err := s.client.Keys(s.ctx, regionKeyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list region keys: %w", err)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("no reference data in Redis, run cmd/load-redis first")
	}

	index := NewIndex()
	for _, key := range keys {
		country := strings.TrimPrefix(key, regionKeyPrefix)

		regions, err := s.client.SMembers(s.ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to read regions for %s: %w", country, err)
		}
		for _, region := range regions {
			index.Add(country, region)
		}
	}
	return index, nil
}

// Add stores one (country, region) pair in Redis
// This is a helper method for populating Redis with data
func (s *RedisSource) Add(country, region string) error {
	key := regionKeyPrefix + country
	if err := s.client.SAdd(s.ctx, key, region).Err(); err != nil {
		return fmt.Errorf("failed to store region %s for %s: %w", region, country, err)
	}
	return nil
}

// LoadFromCSV populates Redis from a reference CSV file
// Useful for initial data population
func (s *RedisSource) LoadFromCSV(csvPath string) (int, error) {
	index, err := NewCSVSource(csvPath).LoadIndex()
	if err != nil {
		return 0, fmt.Errorf("failed to load CSV: %w", err)
	}

	count := 0
	for _, country := range index.CountryCodes() {
		for _, region := range index.Regions(country) {
			if err := s.Add(country, region); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

// IsEmpty checks if Redis has any reference data
// Returns true if no keys with the "regions:" prefix exist
func (s *RedisSource) IsEmpty() (bool, error) {
	keys, err := s.client.Keys(s.ctx, regionKeyPrefix+"*").Result()
	if err != nil {
		return false, fmt.Errorf("failed to check Redis keys: %w", err)
	}
	return len(keys) == 0, nil
}

// Close closes the Redis connection
func (s *RedisSource) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
