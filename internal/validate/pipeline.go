package validate

import (
	"errors"
	"fmt"
	"io"

	"github.com/avivash/geofeed-validator/internal/feed"
	"github.com/avivash/geofeed-validator/internal/models"
)

// Format renders one failure as a single output line:
//
//	<reason>: <prefix>,<country>,<region>,<city>,<postal code>
//
// Field values are reproduced verbatim, empty fields render as nothing
// between the commas. Fields are assumed not to contain commas, per the
// reader's column-count contract.
func Format(f models.Failure) string {
	r := f.Record
	return fmt.Sprintf("%s: %s,%s,%s,%s,%s", f.Reason, r.Prefix, r.Country, r.Region, r.City, r.PostalCode)
}

// Run pulls records from the reader one at a time, validates each, and
// writes a formatted line to w for every invalid record, in feed order.
// Valid records produce no output.
//
// Returns the number of invalid records. The error is non-nil only for
// fatal conditions - a structural parse error in the feed or a write
// failure - never for per-record validation failures. Lines written
// before a fatal error remain valid output.
func (v *Validator) Run(r *feed.Reader, w io.Writer) (int, error) {
	failures := 0
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return failures, nil
		}
		if err != nil {
			return failures, err
		}

		f := v.Check(rec)
		if f == nil {
			continue
		}
		if _, err := fmt.Fprintln(w, Format(*f)); err != nil {
			return failures, fmt.Errorf("failed to write failure line: %w", err)
		}
		failures++
	}
}
