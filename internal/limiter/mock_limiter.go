package limiter

// MockLimiter is a test double for the Limiter interface
type MockLimiter struct {
	// AllowResult controls whether Allow() permits or rejects requests
	AllowResult bool

	// Track method calls for verification in tests
	AllowCalls  []string
	CloseCalled bool

	// Control error scenarios
	CloseErr error
}

// NewMockLimiter creates a mock limiter with the given allow behavior
func NewMockLimiter(allowResult bool) *MockLimiter {
	return &MockLimiter{
		AllowResult: allowResult,
		AllowCalls:  []string{},
	}
}

// Allow implements the Limiter interface
func (m *MockLimiter) Allow(client string) bool {
	m.AllowCalls = append(m.AllowCalls, client)
	return m.AllowResult
}

// Close implements the Limiter interface
func (m *MockLimiter) Close() error {
	m.CloseCalled = true
	return m.CloseErr
}
