// Package testutil provides test doubles shared across packages.
package testutil

import (
	"sync"
)

// MockMatcher is a mock implementation of interfaces.Matcher for testing
type MockMatcher struct {
	mu       sync.Mutex
	valid    map[string]bool
	calls    []string
	fallback bool
}

// NewMockMatcher creates a mock that accepts exactly the given candidates
func NewMockMatcher(valid ...string) *MockMatcher {
	m := &MockMatcher{valid: make(map[string]bool)}
	for _, v := range valid {
		m.valid[v] = true
	}
	return m
}

// Matches implements the Matcher interface
func (m *MockMatcher) Matches(candidate string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, candidate)
	if ok, found := m.valid[candidate]; found {
		return ok
	}
	return m.fallback
}

// SetFallback sets the result for candidates not registered with the mock
func (m *MockMatcher) SetFallback(result bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = result
}

// GetCalls returns a copy of the candidates Matches was called with, in order
func (m *MockMatcher) GetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]string, len(m.calls))
	copy(result, m.calls)
	return result
}

// FailingWriter is an io.Writer that fails after a number of successful writes
type FailingWriter struct {
	mu        sync.Mutex
	remaining int
	err       error
	written   []byte
}

// NewFailingWriter creates a writer that accepts okWrites writes and then
// returns err
func NewFailingWriter(okWrites int, err error) *FailingWriter {
	return &FailingWriter{remaining: okWrites, err: err}
}

// Write implements io.Writer
func (w *FailingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.remaining <= 0 {
		return 0, w.err
	}
	w.remaining--
	w.written = append(w.written, p...)
	return len(p), nil
}

// String returns everything written before the failure
func (w *FailingWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return string(w.written)
}
