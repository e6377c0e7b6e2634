package main

import (
	"fmt"
	"io"
	"os"

	"github.com/avivash/geofeed-validator/internal/config"
	"github.com/avivash/geofeed-validator/internal/feed"
	"github.com/avivash/geofeed-validator/internal/logger"
	"github.com/avivash/geofeed-validator/internal/refdata"
	"github.com/avivash/geofeed-validator/internal/validate"
)

// geofeed-validate checks a geofeed against the ISO 3166-2 reference
// data and prints one line per invalid record.
//
// Usage:
//
//	geofeed-validate [feed file]
//
// The feed is read from the given file, or from stdin when no argument
// is passed. Failure lines go to stdout; logs go to stderr. The exit
// code is 1 if any record was invalid or the feed could not be parsed,
// 0 for a fully clean run.
func main() {
	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	appLogger := logger.New(logger.Config{
		Level:  appConfig.LogLevel,
		Pretty: appConfig.LogPretty,
	})

	index := loadIndex(appConfig, appLogger)

	input, err := openFeed(os.Args)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to open feed")
	}
	defer input.Close()

	validator := validate.New(index, nil, appLogger)

	failures, err := validator.Run(feed.NewReader(input), os.Stdout)
	if err != nil {
		// A structural parse error is reported like the per-record
		// failures, after any lines already written for earlier rows
		fmt.Println(err)
		os.Exit(1)
	}
	if failures > 0 {
		appLogger.Info().Int("failures", failures).Msg("Feed contains invalid records")
		os.Exit(1)
	}
}

// loadIndex builds the reference index from the configured source
func loadIndex(appConfig *config.Config, log *logger.Logger) *refdata.Index {
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

	log.Debug().
		Str("source", appConfig.RefDataType).
		Int("countries", index.Len()).
		Msg("Reference index loaded")
	return index
}

// openFeed returns the feed stream: the file named by the first
// argument, or stdin when none is given
func openFeed(args []string) (io.ReadCloser, error) {
	if len(args) > 1 {
		return os.Open(args[1])
	}
	return os.Stdin, nil
}
