// Package g2p provides grapheme-to-phoneme inference for words absent from
// the canonical lexicon. The default provider is the embedded goruut
// phonemizer; an OpenAI-backed provider is available as an alternative or
// fallback for words goruut handles poorly.
package g2p

import (
	"context"
	"fmt"
	"time"
)

// WordResult is one word-level unit of a phonemization pass.
type WordResult struct {
	Word     string
	Phonemes []string // ordered IPA units, stress marks attached to vowels
}

// Pass is one sentence-level phonemization. A single-word input should
// produce exactly one pass; more than one is an anomaly the caller counts.
type Pass struct {
	Words []WordResult
}

// Phonemizer is the interface G2P providers implement.
type Phonemizer interface {
	// Phonemize converts a word into ordered phonemization passes.
	Phonemize(ctx context.Context, word, lang string) ([]Pass, error)

	// Name returns the provider name.
	Name() string

	// IsAvailable checks if the provider is properly configured.
	IsAvailable() error
}

// Config holds common configuration for G2P providers.
type Config struct {
	Provider string // "goruut" or "openai"
	Language string // locale tag, e.g. "en-us"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string

	// Per-word inference bound; a slow word is skipped, not a stuck run.
	Timeout time.Duration
}

// DefaultConfig returns the default provider configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:    "goruut",
		Language:    "en-us",
		OpenAIModel: "gpt-4o-mini",
		Timeout:     30 * time.Second,
	}
}

// NewPhonemizer creates the appropriate G2P provider based on configuration.
func NewPhonemizer(config *Config) (Phonemizer, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "goruut":
		return NewGoruutPhonemizer(), nil

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIPhonemizer(config), nil

	default:
		return nil, fmt.Errorf("unknown G2P provider: %s", config.Provider)
	}
}
