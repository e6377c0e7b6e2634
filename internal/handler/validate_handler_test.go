package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avivash/geofeed-validator/internal/models"
	"github.com/avivash/geofeed-validator/internal/refdata"
	"github.com/avivash/geofeed-validator/internal/validate"
)

// newTestHandler builds a handler over the US/FR test index
func newTestHandler() *ValidateHandler {
	source := refdata.NewMockSource()
	index, _ := source.LoadIndex()
	return NewValidateHandler(validate.New(index, nil, nil), nil)
}

// postFeed sends a feed body to the handler and decodes the report
func postFeed(t *testing.T, h *ValidateHandler, body string) (*httptest.ResponseRecorder, models.ValidationReport) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ValidateFeed(rec, req)

	var report models.ValidationReport
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return rec, report
}

// TestValidateFeed_CleanFeed tests a feed with no invalid records
func TestValidateFeed_CleanFeed(t *testing.T) {
	h := newTestHandler()

	rec, report := postFeed(t, h, "192.0.2.0/24,US,CA,Los Angeles,90001\n")

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if !report.Valid {
		t.Error("expected feed to be reported valid")
	}
	if report.FailureCount != 0 {
		t.Errorf("expected 0 failures, got %d", report.FailureCount)
	}
	if len(report.Failures) != 0 {
		t.Errorf("expected no failure lines, got %v", report.Failures)
	}
}

// TestValidateFeed_InvalidRecords tests that failures come back as
// formatted lines in feed order
func TestValidateFeed_InvalidRecords(t *testing.T) {
	h := newTestHandler()

	body := "198.51.100.0/24,FR,99,Paris,75000\nbad,,,,\n"
	rec, report := postFeed(t, h, body)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if report.Valid {
		t.Error("expected feed to be reported invalid")
	}
	if report.FailureCount != 2 {
		t.Errorf("expected 2 failures, got %d", report.FailureCount)
	}

	want := []string{
		"Wrong region code: 198.51.100.0/24,FR,99,Paris,75000",
		"Invalid prefix: bad,,,,",
	}
	for i, line := range want {
		if i >= len(report.Failures) || report.Failures[i] != line {
			t.Errorf("expected failure %d to be %q, got %v", i, line, report.Failures)
		}
	}
}

// TestValidateFeed_StructuralError tests that a malformed feed returns
// 400 with the parse error and any failures found before it
func TestValidateFeed_StructuralError(t *testing.T) {
	h := newTestHandler()

	body := "bad,,,,\n192.0.2.0/24,US,CA\n192.0.2.0/24,ZZ,,Nowhere,\n"
	rec, report := postFeed(t, h, body)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if report.Valid {
		t.Error("expected feed to be reported invalid")
	}
	if !strings.Contains(report.ParseError, "192.0.2.0/24,US,CA") {
		t.Errorf("expected parse error to carry the raw row, got %q", report.ParseError)
	}
	// The failure before the bad row is kept, the row after is not reached
	if report.FailureCount != 1 {
		t.Errorf("expected 1 failure before the abort, got %d", report.FailureCount)
	}
}

// TestValidateFeed_EmptyBody tests the missing-body error path
func TestValidateFeed_EmptyBody(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/validate", nil)
	rec := httptest.NewRecorder()

	h.ValidateFeed(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected an error message")
	}
}
