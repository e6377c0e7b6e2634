// Package feed decodes a geofeed stream (RFC 8805 style comma-separated
// records) into GeoRecord values, one record at a time.
//
// The reader is purely structural: it checks the column count and maps
// fields by position. Semantic checks (CIDR syntax, country and region
// codes) belong to the validate package.
package feed

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/avivash/geofeed-validator/internal/models"
)

// MalformedRecordError reports a feed row whose column count is not 5.
// It is fatal for the whole stream: a wrong column count usually means a
// corrupt or wrongly-delimited file, and parsing past it risks garbage
// results. Raw carries the offending row rejoined with commas.
type MalformedRecordError struct {
	Raw string
}

func (e *MalformedRecordError) Error() string {
	return "malformatted record: " + e.Raw
}

// Reader streams GeoRecords from a comma-separated source.
// One record is materialized per Next call, so arbitrarily long feeds
// never need to fit in memory.
type Reader struct {
	csv *csv.Reader
}

// NewReader creates a feed reader over any readable stream
// (file, stdin, HTTP request body)
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	// Column count is our contract to enforce, not the csv package's:
	// a bad row must surface as MalformedRecordError with the raw text
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &Reader{csv: cr}
}

// Next returns the next record from the feed.
//
// Returns io.EOF when the feed is exhausted, or a *MalformedRecordError
// if the next row does not have exactly 5 columns. Any error terminates
// the stream - callers must not continue reading after one.
func (r *Reader) Next() (models.GeoRecord, error) {
	row, err := r.csv.Read()
	if err != nil {
		return models.GeoRecord{}, err
	}

	if len(row) != 5 {
		return models.GeoRecord{}, &MalformedRecordError{Raw: strings.Join(row, ",")}
	}

	return models.GeoRecord{
		Prefix:     row[0],
		Country:    row[1],
		Region:     row[2],
		City:       row[3],
		PostalCode: row[4],
	}, nil
}
