// Package validate applies the field-level geofeed validation rules
// against the reference index.
//
// Rules run in a fixed order per record and short-circuit on the first
// failure, so every invalid record carries exactly one reason:
//
//  1. the prefix must be a syntactically valid CIDR network
//  2. a non-empty country code must exist in the reference index
//  3. a non-empty region code must belong to the record's country, or to
//     any known country when no country is given
package validate

import (
	"net/netip"

	"github.com/avivash/geofeed-validator/internal/logger"
	"github.com/avivash/geofeed-validator/internal/metrics"
	"github.com/avivash/geofeed-validator/internal/models"
	"github.com/avivash/geofeed-validator/internal/refdata"
)

// Validator checks feed records against the reference index.
// The index is read-only after construction, so one Validator can be
// shared freely.
type Validator struct {
	index   *refdata.Index
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// New creates a validator
//
// Parameters:
//   - index: the loaded reference index
//   - m: metrics collector (optional, can be nil)
//   - log: logger (optional, can be nil)
func New(index *refdata.Index, m *metrics.Metrics, log *logger.Logger) *Validator {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Validator{
		index:   index,
		metrics: m,
		logger:  log.WithComponent("Validator"),
	}
}

// Check validates one record and returns nil if it is valid, or a
// Failure carrying the first rule it broke. The record itself is never
// modified.
func (v *Validator) Check(rec models.GeoRecord) *models.Failure {
	if v.metrics != nil {
		v.metrics.RecordsChecked.Inc()
	}

	if !validPrefix(rec.Prefix) {
		return v.fail(rec, models.ReasonInvalidPrefix)
	}

	// An empty country is "unspecified", not invalid
	if rec.Country != "" && !v.index.HasCountry(rec.Country) {
		return v.fail(rec, models.ReasonWrongCountryCode)
	}

	if rec.Region != "" {
		if rec.Country != "" {
			if !v.index.HasRegion(rec.Country, rec.Region) {
				return v.fail(rec, models.ReasonWrongRegionCode)
			}
		} else if !v.index.HasAnyRegion(rec.Region) {
			// No country given: accept any region code known for any
			// country. Deliberately permissive, see the package tests.
			return v.fail(rec, models.ReasonWrongRegionCode)
		}
	}

	return nil
}

func (v *Validator) fail(rec models.GeoRecord, reason string) *models.Failure {
	v.logger.Debug().
		Str("prefix", rec.Prefix).
		Str("country", rec.Country).
		Str("region", rec.Region).
		Str("reason", reason).
		Msg("Record failed validation")
	if v.metrics != nil {
		v.metrics.RecordsInvalid.WithLabelValues(reasonLabel(reason)).Inc()
	}
	return &models.Failure{Record: rec, Reason: reason}
}

// validPrefix reports whether s is a well-formed CIDR network.
// A bare address without a prefix length is rejected, and so is a
// prefix with host bits set ("192.0.2.5/24"): the feed must name the
// network address itself.
func validPrefix(s string) bool {
	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		return false
	}
	return prefix == prefix.Masked()
}

// reasonLabel maps a failure reason to its Prometheus label value
func reasonLabel(reason string) string {
	switch reason {
	case models.ReasonInvalidPrefix:
		return "invalid_prefix"
	case models.ReasonWrongCountryCode:
		return "wrong_country_code"
	case models.ReasonWrongRegionCode:
		return "wrong_region_code"
	default:
		return "unknown"
	}
}
