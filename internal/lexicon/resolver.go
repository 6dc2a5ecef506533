package lexicon

import (
	"fmt"
	"io"

	"codeberg.org/snonux/lexibuild/internal/vocab"
)

// Resolution is the outcome of partitioning a vocabulary against a lexicon.
// Every vocabulary word lands in exactly one bucket: written to the resolved
// output, or collected as out-of-vocabulary.
type Resolution struct {
	ResolvedCount int
	OOV           []string
}

// Resolve writes `WORD<double-space>PHONES` lines for every vocabulary word
// present in the lexicon and collects the rest as OOV. Words are processed
// in sorted order so the resolved output is stable across runs.
func Resolve(words *vocab.Set, lex *Lexicon, w io.Writer) (*Resolution, error) {
	res := &Resolution{}

	for _, word := range words.Words() {
		phones, ok := lex.Phones(word)
		if !ok {
			res.OOV = append(res.OOV, word)
			continue
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", word, phones); err != nil {
			return nil, fmt.Errorf("failed to write resolved word %s: %w", word, err)
		}
		res.ResolvedCount++
	}

	return res, nil
}
