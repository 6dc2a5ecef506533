// Package lexicon loads the canonical pronunciation dictionary and resolves
// an extracted vocabulary against it. Dictionary files use one entry per
// line, `WORD<double-space>PHONES` or `WORD<tab>PHONES`, as in the
// LibriSpeech lexicon and CMUdict distributions.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Lexicon is the immutable word to phone-string lookup table.
type Lexicon struct {
	entries map[string]string
	skipped int
}

// Load parses a dictionary from a reader. Each line is split on two spaces,
// falling back to a tab. Later entries silently overwrite earlier ones.
// Lines starting with ";;;" are CMUdict comments and ignored. Anything else
// that still has fewer than two fields is skipped and counted.
func Load(r io.Reader) (*Lexicon, error) {
	lex := &Lexicon{entries: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.SplitN(line, "  ", 2)
		if len(fields) < 2 {
			fields = strings.SplitN(line, "\t", 2)
		}
		if len(fields) < 2 {
			lex.skipped++
			continue
		}

		word := strings.TrimSpace(fields[0])
		phones := strings.TrimSpace(fields[1])
		if word == "" || phones == "" {
			lex.skipped++
			continue
		}
		lex.entries[word] = phones
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan lexicon: %w", err)
	}

	return lex, nil
}

// LoadFile opens a dictionary file and parses it.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon file %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Phones returns the phone string for a word and whether it is present.
func (l *Lexicon) Phones(word string) (string, bool) {
	phones, ok := l.entries[word]
	return phones, ok
}

// Len returns the number of distinct entries.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// SkippedLines returns how many malformed lines were skipped during loading.
func (l *Lexicon) SkippedLines() int {
	return l.skipped
}
