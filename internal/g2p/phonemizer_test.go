package g2p

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type stubPhonemizer struct {
	passes []Pass
	err    error
	calls  int
}

func (s *stubPhonemizer) Phonemize(ctx context.Context, word, lang string) ([]Pass, error) {
	s.calls++
	return s.passes, s.err
}

func (s *stubPhonemizer) Name() string       { return "stub" }
func (s *stubPhonemizer) IsAvailable() error { return s.err }

func TestNewPhonemizer(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantName string
		wantErr  bool
	}{
		{
			name:     "nil config defaults to goruut",
			config:   nil,
			wantName: "goruut",
		},
		{
			name:     "goruut provider",
			config:   &Config{Provider: "goruut"},
			wantName: "goruut",
		},
		{
			name:     "openai provider",
			config:   &Config{Provider: "openai", OpenAIKey: "test-key"},
			wantName: "openai",
		},
		{
			name:    "openai without key",
			config:  &Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			config:  &Config{Provider: "espeak"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhonemizer(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPhonemizer error: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}

func TestPhonemizerWithFallback(t *testing.T) {
	pass := []Pass{{Words: []WordResult{{Word: "x", Phonemes: []string{"k"}}}}}

	t.Run("primary succeeds", func(t *testing.T) {
		primary := &stubPhonemizer{passes: pass}
		fallback := &stubPhonemizer{}
		p := NewPhonemizerWithFallback(primary, fallback)

		got, err := p.Phonemize(context.Background(), "x", "en-us")
		if err != nil {
			t.Fatalf("Phonemize error: %v", err)
		}
		if !reflect.DeepEqual(got, pass) {
			t.Errorf("Expected primary result, got %v", got)
		}
		if fallback.calls != 0 {
			t.Error("Fallback should not be called when primary succeeds")
		}
	})

	t.Run("primary error falls back", func(t *testing.T) {
		primary := &stubPhonemizer{err: errors.New("boom")}
		fallback := &stubPhonemizer{passes: pass}
		p := NewPhonemizerWithFallback(primary, fallback)

		got, err := p.Phonemize(context.Background(), "x", "en-us")
		if err != nil {
			t.Fatalf("Phonemize error: %v", err)
		}
		if !reflect.DeepEqual(got, pass) {
			t.Errorf("Expected fallback result, got %v", got)
		}
	})

	t.Run("primary empty result falls back", func(t *testing.T) {
		primary := &stubPhonemizer{}
		fallback := &stubPhonemizer{passes: pass}
		p := NewPhonemizerWithFallback(primary, fallback)

		if _, err := p.Phonemize(context.Background(), "x", "en-us"); err != nil {
			t.Fatalf("Phonemize error: %v", err)
		}
		if fallback.calls != 1 {
			t.Errorf("Fallback calls = %d, want 1", fallback.calls)
		}
	})
}

func TestParseIPAResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain units", "h ə l ˈoʊ", []string{"h", "ə", "l", "ˈoʊ"}},
		{"slash delimited", "/h ə l ˈoʊ/", []string{"h", "ə", "l", "ˈoʊ"}},
		{"bracketed with trailing period", "[h ə].", []string{"h", "ə"}},
		{"empty response", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseIPAResponse(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseIPAResponse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
