package g2p

import (
	"context"
	"strings"
	"unicode"

	"github.com/neurlang/goruut/lib"
	"github.com/neurlang/goruut/models/requests"

	"codeberg.org/snonux/lexibuild/internal/arpabet"
)

// goruut takes language names rather than locale tags.
var goruutLanguages = map[string]string{
	"en-us": "English",
	"en-gb": "English",
}

// GoruutPhonemizer runs the embedded goruut phonemizer, the Go port of the
// gruut G2P model. It needs no network access or API key.
type GoruutPhonemizer struct {
	p *lib.Phonemizer
}

// NewGoruutPhonemizer creates a goruut-backed provider.
func NewGoruutPhonemizer() *GoruutPhonemizer {
	return &GoruutPhonemizer{p: lib.NewPhonemizer(nil)}
}

// Phonemize runs goruut inference and segments each word's IPA string into
// phoneme units. goruut returns one result per input sentence, so a single
// word yields a single pass.
func (g *GoruutPhonemizer) Phonemize(ctx context.Context, word, lang string) ([]Pass, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	language, ok := goruutLanguages[strings.ToLower(lang)]
	if !ok {
		language = "English"
	}

	resp := g.p.Sentence(requests.PhonemizeSentence{
		Language: language,
		Sentence: word,
	})

	words := make([]WordResult, 0, len(resp.Words))
	for _, w := range resp.Words {
		units := SegmentIPA(w.Phonetic)
		if len(units) == 0 {
			continue
		}
		words = append(words, WordResult{Word: word, Phonemes: units})
	}
	if len(words) == 0 {
		return nil, nil
	}

	return []Pass{{Words: words}}, nil
}

// Name returns the provider name.
func (g *GoruutPhonemizer) Name() string {
	return "goruut"
}

// IsAvailable always succeeds; the model ships with the binary.
func (g *GoruutPhonemizer) IsAvailable() error {
	return nil
}

// SegmentIPA splits a raw IPA string into phoneme units, greedily matching
// the transliteration table's multi-rune entries first so diphthongs and
// affricates stay whole. A stress mark is held back and attached to the next
// vowel unit, where the target notation carries it; consonants in between
// are emitted bare. Runes the table does not know become single-rune units
// so the transliterator can record them as unmapped.
func SegmentIPA(s string) []string {
	clusters := arpabet.MultiRuneUnits()

	var units []string
	pending := "" // stress mark awaiting its vowel
	runes := []rune(s)

	for i := 0; i < len(runes); {
		r := runes[i]
		if unicode.IsSpace(r) {
			i++
			continue
		}
		if r == 'ˈ' || r == '\'' {
			pending = "ˈ"
			i++
			continue
		}
		if r == 'ˌ' {
			pending = "ˌ"
			i++
			continue
		}

		unit := string(r)
		rest := string(runes[i:])
		for _, c := range clusters {
			if strings.HasPrefix(rest, c) {
				unit = c
				break
			}
		}
		i += len([]rune(unit))

		if pending != "" {
			if phone, _ := arpabet.Transliterate(unit); phone.IsVowel() {
				unit = pending + unit
				pending = ""
			}
		}
		units = append(units, unit)
	}

	return units
}
