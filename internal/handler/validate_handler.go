package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/avivash/geofeed-validator/internal/feed"
	"github.com/avivash/geofeed-validator/internal/metrics"
	"github.com/avivash/geofeed-validator/internal/models"
	"github.com/avivash/geofeed-validator/internal/validate"
)

// ValidateHandler handles HTTP requests for feed validation
// It deals with HTTP concerns only: request decoding, status codes and
// response encoding. The validation rules live in the validate package.
type ValidateHandler struct {
	validator *validate.Validator
	metrics   *metrics.Metrics
}

// NewValidateHandler creates a new validation handler
// The metrics collector is optional and can be nil.
func NewValidateHandler(v *validate.Validator, m *metrics.Metrics) *ValidateHandler {
	return &ValidateHandler{validator: v, metrics: m}
}

// ValidateFeed handles POST /v1/validate
//
// The request body is the raw geofeed (text/csv, one record per line).
// The response reports every invalid record as a formatted failure line,
// in feed order. A structural parse error stops processing; failures
// found before it are still reported alongside the error.
//
// Status codes:
//   - 200: feed was fully parsed (records may still be invalid)
//   - 400: empty body, or the feed was structurally malformed
func (h *ValidateHandler) ValidateFeed(w http.ResponseWriter, r *http.Request) {
	if r.Body == nil || r.ContentLength == 0 {
		h.respondError(w, http.StatusBadRequest, "Request body must contain a geofeed")
		return
	}
	defer r.Body.Close()

	report := models.ValidationReport{Failures: []string{}}

	// The request body streams through the reader one record at a time,
	// the feed is never buffered whole
	reader := feed.NewReader(r.Body)
	for {
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Structural parse error: stop here, keep what we found so far
			report.ParseError = err.Error()
			break
		}
		if f := h.validator.Check(rec); f != nil {
			report.Failures = append(report.Failures, validate.Format(*f))
		}
	}

	report.FailureCount = len(report.Failures)
	report.Valid = report.FailureCount == 0 && report.ParseError == ""
	h.recordOutcome(report)

	status := http.StatusOK
	if report.ParseError != "" {
		status = http.StatusBadRequest
	}
	h.respondJSON(w, status, report)
}

// recordOutcome tracks per-feed metrics
func (h *ValidateHandler) recordOutcome(report models.ValidationReport) {
	if h.metrics == nil {
		return
	}
	switch {
	case report.ParseError != "":
		h.metrics.StructuralErrors.Inc()
		h.metrics.FeedsProcessed.WithLabelValues("parse_error").Inc()
	case report.FailureCount > 0:
		h.metrics.FeedsProcessed.WithLabelValues("invalid").Inc()
	default:
		h.metrics.FeedsProcessed.WithLabelValues("clean").Inc()
	}
}

// respondJSON writes a JSON response with the given status code
func (h *ValidateHandler) respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// respondError writes an error response with consistent formatting
func (h *ValidateHandler) respondError(w http.ResponseWriter, statusCode int, message string) {
	h.respondJSON(w, statusCode, models.ErrorResponse{Error: message})
}
