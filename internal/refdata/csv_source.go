package refdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVSource implements Source by reading an ISO 3166-2 CSV file, such as
// the IP2LOCATION-ISO3166-2.CSV table published by IP2Location.
//
// Row layout: column 0 is the country code, column 2 is the region code.
// Column 1 (the subdivision name) and anything past column 2 are ignored.
type CSVSource struct {
	path string
}

// NewCSVSource creates a CSV source for the given file path.
// The path comes from configuration - there is no baked-in default here.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// LoadIndex opens the file and builds the index from every row
func (s *CSVSource) LoadIndex() (*Index, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference file: %w", err)
	}
	defer file.Close()

	index, err := ReadIndex(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference file %s: %w", s.path, err)
	}
	return index, nil
}

// ReadIndex builds an index from any comma-separated row source.
// Exported separately from CSVSource so callers holding a stream (tests,
// the Redis loader) can reuse the same parsing rules.
//
// A row with fewer than 3 columns fails the whole load: the index must
// cover the complete dataset or validation results would be misleading.
func ReadIndex(r io.Reader) (*Index, error) {
	reader := csv.NewReader(r)
	// Rows may carry extra columns; we only care about 0 and 2
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	index := NewIndex()
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read reference row: %w", err)
		}
		if len(row) < 3 {
			return nil, fmt.Errorf("reference row has %d columns, need at least 3: %s", len(row), strings.Join(row, ","))
		}
		index.Add(row[0], row[2])
	}
	return index, nil
}

// Close cleans up resources
// The file is closed after loading, so there is nothing left to release
func (s *CSVSource) Close() error {
	return nil
}
