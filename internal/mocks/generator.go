package mocks

import (
	"context"
	"sync"

	"github.com/lioapp/lio-api/internal/generation"
)

// MockTextGenerator implements generation.TextGenerator for testing
type MockTextGenerator struct {
	// GenerateContentFn allows test cases to mock the GenerateContent behavior
	GenerateContentFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Response string
	Err      error

	// Call tracking for verification
	mu      sync.Mutex
	Prompts []string
}

// Ensure MockTextGenerator implements generation.TextGenerator interface
var _ generation.TextGenerator = (*MockTextGenerator)(nil)

// GenerateContent implements the generation.TextGenerator interface
func (m *MockTextGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	m.mu.Unlock()

	if m.GenerateContentFn != nil {
		return m.GenerateContentFn(ctx, prompt)
	}
	return m.Response, m.Err
}

// CallCount returns how many times GenerateContent was called.
func (m *MockTextGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}

// LastPrompt returns the most recent prompt, or "" if none.
func (m *MockTextGenerator) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Prompts) == 0 {
		return ""
	}
	return m.Prompts[len(m.Prompts)-1]
}
