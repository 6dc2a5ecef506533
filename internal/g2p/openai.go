package g2p

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// OpenAIPhonemizer asks a chat model for an IPA transcription. Calls run
// through a circuit breaker so a failing API trips open and later words fail
// fast instead of each burning the full timeout.
type OpenAIPhonemizer struct {
	apiKey  string
	client  *openai.Client
	model   string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAIPhonemizer creates an OpenAI-backed provider from the config.
func NewOpenAIPhonemizer(config *Config) *OpenAIPhonemizer {
	model := config.OpenAIModel
	if model == "" {
		model = "gpt-4o-mini"
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIPhonemizer{
		apiKey:  config.OpenAIKey,
		client:  openai.NewClient(config.OpenAIKey),
		model:   model,
		timeout: timeout,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openai-g2p",
			Timeout: 60 * time.Second,
		}),
	}
}

// Phonemize requests a space-separated IPA transcription for the word.
func (o *OpenAIPhonemizer) Phonemize(ctx context.Context, word, lang string) ([]Pass, error) {
	if o.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a phonetician producing machine-readable IPA transcriptions. " +
					"Respond with only the IPA phonemes of the given word, separated by single spaces. " +
					"Attach the primary (ˈ) or secondary (ˌ) stress mark directly to the vowel it applies to. " +
					"Keep diphthongs and affricates as single units. No slashes, brackets or commentary.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Transcribe the word '%s' (locale %s).", word, lang),
			},
		},
		Temperature: 0.2,
		MaxTokens:   100,
	}

	result, err := o.breaker.Execute(func() (interface{}, error) {
		resp, err := o.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return nil, fmt.Errorf("no response from OpenAI")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return nil, err
	}

	units := parseIPAResponse(result.(string))
	if len(units) == 0 {
		return nil, nil
	}

	return []Pass{{Words: []WordResult{{Word: word, Phonemes: units}}}}, nil
}

// Name returns the provider name.
func (o *OpenAIPhonemizer) Name() string {
	return "openai"
}

// IsAvailable checks that an API key is configured.
func (o *OpenAIPhonemizer) IsAvailable() error {
	if o.apiKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}

// parseIPAResponse splits a model response into IPA units, stripping the
// delimiters chat models like to add despite instructions.
func parseIPAResponse(content string) []string {
	content = strings.Trim(strings.TrimSpace(content), "/[]")

	var units []string
	for _, field := range strings.Fields(content) {
		if field = strings.Trim(field, "/[],."); field != "" {
			units = append(units, field)
		}
	}
	return units
}

// PhonemizerWithFallback wraps a primary provider with a fallback option.
type PhonemizerWithFallback struct {
	primary  Phonemizer
	fallback Phonemizer
}

// NewPhonemizerWithFallback creates a provider that falls back to secondary
// if the primary fails or produces nothing.
func NewPhonemizerWithFallback(primary, fallback Phonemizer) Phonemizer {
	return &PhonemizerWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// Phonemize tries the primary provider first, falling back on error or an
// empty result.
func (p *PhonemizerWithFallback) Phonemize(ctx context.Context, word, lang string) ([]Pass, error) {
	passes, err := p.primary.Phonemize(ctx, word, lang)
	if err == nil && len(passes) > 0 {
		return passes, nil
	}
	return p.fallback.Phonemize(ctx, word, lang)
}

// Name returns the provider name.
func (p *PhonemizerWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available.
func (p *PhonemizerWithFallback) IsAvailable() error {
	if err := p.primary.IsAvailable(); err == nil {
		return nil
	}
	return p.fallback.IsAvailable()
}
