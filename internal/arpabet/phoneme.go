// Package arpabet defines the fixed 39-phoneme target inventory used by the
// lexicon output files and the transliteration from IPA into it. Phoneme
// codes follow the CMUdict convention: vowels carry a trailing stress digit
// (1 primary, 2 secondary, empty when unstressed), consonants never do.
package arpabet

// Phoneme is one code from the target inventory.
type Phoneme string

// Vowels
const (
	AA Phoneme = "AA"
	AE Phoneme = "AE"
	AH Phoneme = "AH"
	AO Phoneme = "AO"
	AW Phoneme = "AW"
	AY Phoneme = "AY"
	EH Phoneme = "EH"
	ER Phoneme = "ER"
	EY Phoneme = "EY"
	IH Phoneme = "IH"
	IY Phoneme = "IY"
	OW Phoneme = "OW"
	OY Phoneme = "OY"
	UH Phoneme = "UH"
	UW Phoneme = "UW"
)

// Consonants
const (
	B  Phoneme = "B"
	CH Phoneme = "CH"
	D  Phoneme = "D"
	DH Phoneme = "DH"
	F  Phoneme = "F"
	G  Phoneme = "G"
	HH Phoneme = "HH"
	JH Phoneme = "JH"
	K  Phoneme = "K"
	L  Phoneme = "L"
	M  Phoneme = "M"
	N  Phoneme = "N"
	NG Phoneme = "NG"
	P  Phoneme = "P"
	R  Phoneme = "R"
	S  Phoneme = "S"
	SH Phoneme = "SH"
	T  Phoneme = "T"
	TH Phoneme = "TH"
	V  Phoneme = "V"
	W  Phoneme = "W"
	Y  Phoneme = "Y"
	Z  Phoneme = "Z"
	ZH Phoneme = "ZH"
)

// Unknown is the sentinel code substituted for IPA units that have no
// mapping. It is a coverage signal, never an error.
const Unknown Phoneme = "<UNK>"

var vowels = map[Phoneme]bool{
	AA: true, AE: true, AH: true, AO: true, AW: true,
	AY: true, EH: true, ER: true, EY: true, IH: true,
	IY: true, OW: true, OY: true, UH: true, UW: true,
}

// IsVowel reports whether p is one of the 15 vowel codes.
func (p Phoneme) IsVowel() bool {
	return vowels[p]
}

// All returns the closed 39-code inventory, vowels first.
func All() []Phoneme {
	return []Phoneme{
		AA, AE, AH, AO, AW, AY, EH, ER, EY, IH, IY, OW, OY, UH, UW,
		B, CH, D, DH, F, G, HH, JH, K, L, M, N, NG, P, R, S, SH, T,
		TH, V, W, Y, Z, ZH,
	}
}
