package models

// GeoRecord is a single geofeed entry: one IP prefix plus its location
// metadata, exactly as it appeared on the input line.
// Fields are positional in the feed: prefix,country,region,city,postal_code
// All fields are kept verbatim - empty fields stay empty strings.
type GeoRecord struct {
	Prefix     string `json:"prefix"`      // IP network in CIDR form, e.g. "192.0.2.0/24"
	Country    string `json:"country"`     // ISO 3166-1 alpha-2 code, or empty
	Region     string `json:"region"`      // ISO 3166-2 subdivision code, or empty
	City       string `json:"city"`        // Free text, not validated
	PostalCode string `json:"postal_code"` // Free text, not validated
}

// Validation failure reasons.
// These exact strings appear in the formatted output lines, so they are
// part of the tool's external contract - do not reword them.
const (
	ReasonInvalidPrefix    = "Invalid prefix"
	ReasonWrongCountryCode = "Wrong country code"
	ReasonWrongRegionCode  = "Wrong region code"
)

// Failure pairs an invalid record with the single reason it was rejected.
// Valid records never materialize a Failure - the validator returns nil
// for them instead of mutating the record in place.
type Failure struct {
	Record GeoRecord `json:"record"`
	Reason string    `json:"reason"`
}

// ValidationReport is the HTTP response body for a validated feed
type ValidationReport struct {
	Valid        bool     `json:"valid"`           // true only if no failures and no parse error
	FailureCount int      `json:"failure_count"`   // number of invalid records
	Failures     []string `json:"failures"`        // formatted failure lines, feed order
	ParseError   string   `json:"error,omitempty"` // structural parse error, if the feed was cut short
}

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Error string `json:"error"` // Error message
}
