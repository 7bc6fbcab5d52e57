// Package testutils provides deterministic test doubles for the evaluation
// pipeline, chiefly a pattern-matching mock LLM client.
package testutils

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jamesindeed/ai-vibexml-eval/internal/ports"
)

// MockLLMClient implements ports.LLMClient with deterministic, pattern-based
// responses. Longer patterns win over shorter ones so specific fixtures can
// shadow broad defaults. Safe for concurrent use.
type MockLLMClient struct {
	mu        sync.Mutex
	model     string
	responses map[string]string
	failures  map[string]error
	calls     []string
}

var _ ports.LLMClient = (*MockLLMClient)(nil)

// MockResponse maps a prompt substring to a canned response.
type MockResponse struct {
	Pattern  string
	Response string
}

// NewMockLLMClient creates a mock client with no configured responses.
// Prompts that match nothing return the default response.
func NewMockLLMClient(model string) *MockLLMClient {
	return &MockLLMClient{
		model:     model,
		responses: make(map[string]string),
		failures:  make(map[string]error),
	}
}

// AddResponse registers a response for prompts containing the pattern.
// An empty pattern sets the default response.
func (m *MockLLMClient) AddResponse(response MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[response.Pattern] = response.Response
}

// FailOn makes prompts containing the pattern return the given error.
// Failure patterns take precedence over responses.
func (m *MockLLMClient) FailOn(pattern string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[pattern] = err
}

// Calls returns a copy of all prompts seen so far, in order.
func (m *MockLLMClient) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// Complete returns the configured response whose pattern matches the prompt.
func (m *MockLLMClient) Complete(ctx context.Context, prompt string, options map[string]any) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, prompt)

	if pattern, ok := bestMatch(m.failures, prompt); ok {
		return "", m.failures[pattern]
	}
	if pattern, ok := bestMatch(m.responses, prompt); ok {
		return m.responses[pattern], nil
	}
	if def, ok := m.responses[""]; ok {
		return def, nil
	}
	return "This is a standard response for testing purposes.", nil
}

// bestMatch returns the longest non-empty pattern contained in the prompt.
func bestMatch[V any](patterns map[string]V, prompt string) (string, bool) {
	best := ""
	found := false
	for pattern := range patterns {
		if pattern == "" || !strings.Contains(prompt, pattern) {
			continue
		}
		if len(pattern) > len(best) {
			best = pattern
			found = true
		}
	}
	return best, found
}

// EstimateTokens approximates tokens at four characters per token.
func (m *MockLLMClient) EstimateTokens(text string) (int, error) {
	return len(text) / 4, nil
}

// GetModel returns the mock model identifier.
func (m *MockLLMClient) GetModel() string { return m.model }
