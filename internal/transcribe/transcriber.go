// Package transcribe synthesizes phone strings for out-of-vocabulary words.
// Each word is recased, phonemized through a G2P provider, transliterated
// into the target inventory, and written to the unhandled-words output. No
// failure on a single word aborts the batch.
package transcribe

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/lexibuild/internal/arpabet"
	"codeberg.org/snonux/lexibuild/internal/g2p"
)

// DefaultKeepCase lists acronyms that must keep their original casing. The
// G2P model mis-segments these when lower-cased; everything else is
// lower-cased because the model is trained on natural-case text and performs
// badly on all-caps input.
var DefaultKeepCase = []string{
	"UV", "MVD", "LLD", "NRA", "MPS", "WDSU", "MWDDY", "VC", "LJ", "BBL",
}

// Transcriber runs the OOV path for individual words.
type Transcriber struct {
	phonemizer g2p.Phonemizer
	lang       string
	keepCase   map[string]struct{}
	bad        *arpabet.Collector
}

// Report summarizes a transcription batch.
type Report struct {
	Written        int
	Skipped        int      // words with an empty transcription, no line written
	MultiPass      int      // single-word inputs that produced extra passes
	Unhandled      []string // the skipped words, for diagnostics
	Transcriptions map[string]string // upper-cased word to phone string, as written
}

// New creates a Transcriber. Extra allow-list entries extend DefaultKeepCase.
// The collector accumulates IPA units the transliterator could not map.
func New(phonemizer g2p.Phonemizer, lang string, extraKeepCase []string, bad *arpabet.Collector) *Transcriber {
	keep := make(map[string]struct{}, len(DefaultKeepCase)+len(extraKeepCase))
	for _, w := range DefaultKeepCase {
		keep[w] = struct{}{}
	}
	for _, w := range extraKeepCase {
		keep[w] = struct{}{}
	}

	return &Transcriber{
		phonemizer: phonemizer,
		lang:       lang,
		keepCase:   keep,
		bad:        bad,
	}
}

// Recase lower-cases a word unless it is on the keep-case allow-list.
// Allow-list membership affects only casing, never whether a word is
// transcribed.
func (t *Transcriber) Recase(word string) string {
	if _, ok := t.keepCase[word]; ok {
		return word
	}
	return strings.ToLower(word)
}

// Transcribe runs one word through recasing, G2P and transliteration.
// It returns the trimmed phone string, which is empty when the word could
// not be transcribed, and whether extra passes were produced. Only the first
// pass contributes phonemes; concatenating all passes would inflate the
// transcription for what is a single-word input.
func (t *Transcriber) Transcribe(ctx context.Context, word string) (phones string, multiPass bool, err error) {
	recased := t.Recase(word)

	passes, err := t.phonemizer.Phonemize(ctx, recased, t.lang)
	if err != nil {
		return "", false, err
	}
	if len(passes) == 0 {
		return "", false, nil
	}
	multiPass = len(passes) > 1

	var sb strings.Builder
	for _, w := range passes[0].Words {
		for _, unit := range w.Phonemes {
			phone, stress := arpabet.Transliterate(unit)
			if phone == arpabet.Unknown {
				t.bad.Record(unit)
			}
			sb.WriteString(arpabet.Format(phone, stress))
		}
	}

	return strings.TrimSpace(sb.String()), multiPass, nil
}

// TranscribeAll processes every word and writes successful transcriptions to
// w as `WORD<double-space>PHONES` lines, word upper-cased. Words that yield
// nothing are reported and skipped; G2P errors are treated the same way so
// the batch always runs to completion.
func (t *Transcriber) TranscribeAll(ctx context.Context, words []string, w io.Writer) (*Report, error) {
	report := &Report{Transcriptions: make(map[string]string)}

	for _, word := range words {
		phones, multiPass, err := t.Transcribe(ctx, word)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: G2P failed for '%s': %v\n", word, err)
			report.Skipped++
			report.Unhandled = append(report.Unhandled, word)
			continue
		}
		if multiPass {
			fmt.Fprintf(os.Stderr, "Warning: '%s' produced multiple phonemization passes\n", word)
			report.MultiPass++
		}
		if phones == "" {
			report.Skipped++
			report.Unhandled = append(report.Unhandled, word)
			continue
		}

		upper := strings.ToUpper(word)
		if _, err := fmt.Fprintf(w, "%s  %s\n", upper, phones); err != nil {
			return nil, fmt.Errorf("failed to write transcription for %s: %w", word, err)
		}
		report.Transcriptions[upper] = phones
		report.Written++
	}

	return report, nil
}
