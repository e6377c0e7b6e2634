package main

import (
	"fmt"
	"log"

	"github.com/avivash/geofeed-validator/internal/config"
	"github.com/avivash/geofeed-validator/internal/refdata"
)

// This tool loads the ISO 3166-2 reference data from CSV into Redis
// Usage: go run cmd/load-redis/main.go
func main() {
	fmt.Println("Loading reference data into Redis...")

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	fmt.Printf("Connecting to Redis at %s...\n", appConfig.RedisAddr)
	source, err := refdata.NewRedisSource(appConfig.RedisAddr, appConfig.RedisPassword, appConfig.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer source.Close()

	fmt.Printf("Loading data from %s...\n", appConfig.RefDataPath)
	count, err := source.LoadFromCSV(appConfig.RefDataPath)
	if err != nil {
		log.Fatalf("Failed to load CSV data: %v", err)
	}

	fmt.Printf("Loaded %d (country, region) pairs into Redis\n", count)
	fmt.Println("You can now run the validator with REFDATA_TYPE=redis")
}
