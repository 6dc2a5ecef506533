// Package testutil provides shared test doubles for the pipeline packages.
package testutil

import (
	"context"
	"fmt"

	"codeberg.org/snonux/lexibuild/internal/g2p"
)

// MockPhonemizer mocks a G2P provider for testing. Phonemes maps a recased
// word to the IPA units one pass should return; Passes overrides the full
// pass structure for words that need multi-pass behavior.
type MockPhonemizer struct {
	Phonemes map[string][]string
	Passes   map[string][]g2p.Pass
	Errors   map[string]error
	Calls    []string
}

// Phonemize returns the configured passes for the word.
func (m *MockPhonemizer) Phonemize(ctx context.Context, word, lang string) ([]g2p.Pass, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("%s/%s", word, lang))

	if err, ok := m.Errors[word]; ok {
		return nil, err
	}
	if passes, ok := m.Passes[word]; ok {
		return passes, nil
	}
	if units, ok := m.Phonemes[word]; ok {
		return []g2p.Pass{{
			Words: []g2p.WordResult{{Word: word, Phonemes: units}},
		}}, nil
	}

	return nil, nil
}

// Name returns the mock provider name.
func (m *MockPhonemizer) Name() string {
	return "mock"
}

// IsAvailable always succeeds.
func (m *MockPhonemizer) IsAvailable() error {
	return nil
}
