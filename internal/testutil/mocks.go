package testutil

import (
	"context"
	"fmt"
	"sync"

	"codeberg.org/snonux/textlens/internal/sentiment"
)

// MockTranslator mocks a translation provider
type MockTranslator struct {
	// Responses maps input text to its translation
	Responses map[string]string
	// Err, when set, is returned for every call
	Err error

	mu    sync.Mutex
	Calls []string
}

// Translate returns the configured response, or the input text unchanged
func (m *MockTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, fmt.Sprintf("%s->%s: %s", source, target, text))
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	if resp, ok := m.Responses[text]; ok {
		return resp, nil
	}
	return text, nil
}

// CallCount returns the number of Translate calls
func (m *MockTranslator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockScorer mocks a sentiment scorer
type MockScorer struct {
	// Scores maps exact texts to scores
	Scores map[string]sentiment.Score
	// Default is returned for texts not in Scores
	Default sentiment.Score
	// FailOn lists exact texts that fail to score
	FailOn []string
	// Err, when set, is returned for every call
	Err error

	mu    sync.Mutex
	Calls []string
}

// Score implements sentiment.Scorer
func (m *MockScorer) Score(ctx context.Context, text string) (sentiment.Score, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, text)
	m.mu.Unlock()

	if m.Err != nil {
		return sentiment.Score{}, m.Err
	}
	for _, s := range m.FailOn {
		if text == s {
			return sentiment.Score{}, fmt.Errorf("cannot score %q", text)
		}
	}
	if score, ok := m.Scores[text]; ok {
		return score, nil
	}
	return m.Default, nil
}

// CallCount returns the number of Score calls
func (m *MockScorer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
