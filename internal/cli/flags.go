package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile       string
	LogFile       string
	LexiconFile   string
	OutputDir     string
	ResolvedFile  string
	UnhandledFile string
	ExportDB      string
	ListModels    bool

	// G2P flags
	G2PProvider string
	Language    string
	G2PTimeout  time.Duration
	OpenAIModel string

	// Recasing
	KeepCase []string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputDir:     ".",
		ResolvedFile:  "words.txt",
		UnhandledFile: "unhandled.txt",
		G2PProvider:   "goruut",
		Language:      "en-us",
		G2PTimeout:    30 * time.Second,
		OpenAIModel:   "gpt-4o-mini",
	}
}
