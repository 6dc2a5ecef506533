// Package vocab extracts the runtime vocabulary from log files. Each log line
// quotes the word the synthesizer was asked to pronounce; the extractor takes
// the field before the last quote on each line and deduplicates the results.
package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Set is an unordered collection of unique words.
type Set struct {
	words map[string]struct{}
}

// NewSet returns an empty word set.
func NewSet() *Set {
	return &Set{words: make(map[string]struct{})}
}

// Add inserts a word into the set.
func (s *Set) Add(word string) {
	s.words[word] = struct{}{}
}

// Contains reports whether the word is in the set.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct words.
func (s *Set) Len() int {
	return len(s.words)
}

// Words returns a sorted snapshot so downstream output is deterministic.
func (s *Set) Words() []string {
	words := make([]string, 0, len(s.words))
	for w := range s.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Stats reports what the extractor saw while scanning.
type Stats struct {
	Lines     int // total lines scanned
	Malformed int // lines without a quoted field, skipped
}

// Extract scans log lines and collects candidate words. A line is split on
// single quotes and the second-to-last field is taken; lines with fewer than
// two quote-delimited fields are malformed and skipped, not fatal. Empty
// candidates after trimming are ignored.
func Extract(r io.Reader) (*Set, *Stats, error) {
	set := NewSet()
	stats := &Stats{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		stats.Lines++
		fields := strings.Split(scanner.Text(), "'")
		if len(fields) < 2 {
			stats.Malformed++
			continue
		}
		if word := strings.TrimSpace(fields[len(fields)-2]); word != "" {
			set.Add(word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to scan log: %w", err)
	}

	return set, stats, nil
}

// ExtractFile opens a log file and extracts its vocabulary. A missing or
// unreadable file is the one fatal condition in this package.
func ExtractFile(path string) (*Set, *Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	defer f.Close()

	return Extract(f)
}
