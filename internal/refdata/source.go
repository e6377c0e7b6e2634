package refdata

// Source defines the interface for loading the ISO 3166-2 reference data
// Allows multiple backends (CSV, MySQL, Redis) and easy testing with mocks
type Source interface {
	// LoadIndex reads the full reference dataset and builds the in-memory index.
	// The load is all-or-nothing: any malformed source row fails the whole
	// load, a partially built index is never returned.
	LoadIndex() (*Index, error)

	// Close cleans up resources (database connections, file handles, etc.)
	Close() error
}
