package refdata

// MockSource is a test double for the Source interface
// It allows tests to control the returned index and verify interactions
type MockSource struct {
	// Index is returned by LoadIndex when LoadErr is nil
	Index *Index

	// Track method calls for verification in tests
	LoadCalls   int
	CloseCalled bool

	// Control behavior for error scenarios
	LoadErr  error
	CloseErr error
}

// NewMockSource creates a mock source pre-populated with a small dataset
// covering two US states and one French department
func NewMockSource() *MockSource {
	index := NewIndex()
	index.Add("US", "CA")
	index.Add("US", "NY")
	index.Add("FR", "75")
	return &MockSource{Index: index}
}

// LoadIndex implements the Source interface
func (m *MockSource) LoadIndex() (*Index, error) {
	m.LoadCalls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Index, nil
}

// Close implements the Source interface
func (m *MockSource) Close() error {
	m.CloseCalled = true
	return m.CloseErr
}
