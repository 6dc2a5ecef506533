package arpabet

import (
	"sort"
	"strings"
	"sync"
)

// Stress is the lexical stress carried by a vowel phoneme.
type Stress int

const (
	NoStress Stress = iota
	Primary
	Secondary
)

// Suffix returns the trailing digit written after a vowel code. Unstressed
// vowels get an empty suffix rather than a literal "0", matching the
// convention of the canonical lexicon this tool extends.
func (s Stress) Suffix() string {
	switch s {
	case Primary:
		return "1"
	case Secondary:
		return "2"
	default:
		return ""
	}
}

// ipaTable maps a stress-stripped IPA unit to its target phoneme. Multi-rune
// keys cover diphthongs, affricates written with or without a tie-bar, and
// r-colored vowels in both Unicode forms. ASCII "g" and "r" variants are
// included because some phonemizers emit them instead of ɡ/ɹ.
var ipaTable = map[string]Phoneme{
	"ɒ":  AA,
	"ɑ":  AA,
	"æ":  AE,
	"ʌ":  AH,
	"ə":  AH,
	"ɔ":  AO,
	"aʊ": AW,
	"aɪ": AY,
	"ɛ":  EH,
	"ɝ":  ER,
	"ɚ":  ER,
	"eɪ": EY,
	"ɪ":  IH,
	"i":  IY,
	"oʊ": OW,
	"ɔɪ": OY,
	"ʊ":  UH,
	"u":  UW,

	"b":  B,
	"tʃ": CH, "t͡ʃ": CH,
	"d": D,
	"ð": DH,
	"f": F,
	"ɡ": G, "g": G,
	"h":  HH,
	"dʒ": JH, "d͡ʒ": JH,
	"k": K,
	"l": L,
	"m": M,
	"n": N,
	"ŋ": NG,
	"p": P,
	"ɹ": R, "r": R,
	"s": S,
	"ʃ": SH,
	"t": T,
	"θ": TH,
	"v": V,
	"w": W,
	"j": Y,
	"z": Z,
	"ʒ": ZH,
}

// Transliterate converts one IPA unit into a target phoneme and its stress.
// It is total: units with no table entry yield Unknown, never an error. Both
// the apostrophe and the IPA vertical stroke mark primary stress. Stress is
// kept only on vowels; on consonants and on Unknown it is discarded.
func Transliterate(unit string) (Phoneme, Stress) {
	stress := NoStress
	switch {
	case strings.HasPrefix(unit, "ˈ"), strings.HasPrefix(unit, "'"):
		unit = strings.TrimPrefix(strings.TrimPrefix(unit, "ˈ"), "'")
		stress = Primary
	case strings.HasPrefix(unit, "ˌ"):
		unit = strings.TrimPrefix(unit, "ˌ")
		stress = Secondary
	}

	phone, ok := ipaTable[unit]
	if !ok {
		return Unknown, NoStress
	}
	if !phone.IsVowel() {
		return phone, NoStress
	}
	return phone, stress
}

// Known reports whether the stress-stripped IPA unit has a table entry.
func Known(unit string) bool {
	phone, _ := Transliterate(unit)
	return phone != Unknown
}

// MultiRuneUnits returns the table keys longer than one rune, longest first.
// The G2P providers use them to segment a raw IPA string into units.
func MultiRuneUnits() []string {
	var units []string
	for k := range ipaTable {
		if len([]rune(k)) > 1 {
			units = append(units, k)
		}
	}
	sort.Slice(units, func(i, j int) bool {
		if len(units[i]) != len(units[j]) {
			return len(units[i]) > len(units[j])
		}
		return units[i] < units[j]
	})
	return units
}

// Format renders the textual form appended to a phone string: the code, the
// stress suffix, and exactly one trailing space.
func Format(p Phoneme, s Stress) string {
	return string(p) + s.Suffix() + " "
}

// Collector accumulates the distinct IPA units that failed to transliterate.
// It replaces the ambient global set of the original pipeline so the result
// can be threaded through, and it is safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	units map[string]struct{}
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{units: make(map[string]struct{})}
}

// Record notes an IPA unit that had no mapping.
func (c *Collector) Record(unit string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.units[unit] = struct{}{}
}

// Len returns the number of distinct recorded units.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.units)
}

// Units returns the recorded units in sorted order.
func (c *Collector) Units() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	units := make([]string, 0, len(c.units))
	for u := range c.units {
		units = append(units, u)
	}
	sort.Strings(units)
	return units
}
