package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"codeberg.org/snonux/lexibuild/internal/arpabet"
	"codeberg.org/snonux/lexibuild/internal/cli"
	"codeberg.org/snonux/lexibuild/internal/g2p"
	"codeberg.org/snonux/lexibuild/internal/lexdb"
	"codeberg.org/snonux/lexibuild/internal/lexicon"
	"codeberg.org/snonux/lexibuild/internal/transcribe"
	"codeberg.org/snonux/lexibuild/internal/vocab"
)

// Pipeline handles the main lexicon build logic
type Pipeline struct {
	flags       *cli.Flags
	transcriber *transcribe.Transcriber
	badPhonemes *arpabet.Collector
}

// New creates a pipeline from the resolved flags; the G2P provider is
// constructed up front so a misconfiguration fails before any file is read.
func New(flags *cli.Flags) (*Pipeline, error) {
	phonemizer, err := g2p.NewPhonemizer(&g2p.Config{
		Provider:    flags.G2PProvider,
		Language:    flags.Language,
		OpenAIKey:   cli.GetOpenAIKey(),
		OpenAIModel: flags.OpenAIModel,
		Timeout:     flags.G2PTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create G2P provider: %w", err)
	}

	return NewWithPhonemizer(flags, phonemizer), nil
}

// NewWithPhonemizer creates a pipeline around an already constructed G2P
// provider.
func NewWithPhonemizer(flags *cli.Flags, phonemizer g2p.Phonemizer) *Pipeline {
	keepCase := flags.KeepCase
	if extra := viper.GetStringSlice("recase.keep"); len(extra) > 0 {
		keepCase = append(keepCase, extra...)
	}

	bad := arpabet.NewCollector()
	return &Pipeline{
		flags:       flags,
		transcriber: transcribe.New(phonemizer, flags.Language, keepCase, bad),
		badPhonemes: bad,
	}
}

// Run executes the full build: extract, load, resolve, transcribe, and
// optionally export. Per-word problems are reported and skipped; only
// unreadable inputs abort the run.
func (p *Pipeline) Run(ctx context.Context) error {
	words, stats, err := vocab.ExtractFile(p.flags.LogFile)
	if err != nil {
		return err
	}
	fmt.Printf("Extracted %d words from %d log lines\n", words.Len(), stats.Lines)
	if stats.Malformed > 0 {
		fmt.Fprintf(os.Stderr, "Warning: skipped %d malformed log lines\n", stats.Malformed)
	}

	lex, err := lexicon.LoadFile(p.flags.LexiconFile)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d lexicon entries\n", lex.Len())
	if lex.SkippedLines() > 0 {
		fmt.Fprintf(os.Stderr, "Warning: skipped %d malformed lexicon lines\n", lex.SkippedLines())
	}

	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	resolvedPath := filepath.Join(p.flags.OutputDir, p.flags.ResolvedFile)
	resolvedOut, err := os.Create(resolvedPath)
	if err != nil {
		return fmt.Errorf("failed to create resolved output %s: %w", resolvedPath, err)
	}
	defer resolvedOut.Close()

	resolution, err := lexicon.Resolve(words, lex, resolvedOut)
	if err != nil {
		return err
	}

	unhandledPath := filepath.Join(p.flags.OutputDir, p.flags.UnhandledFile)
	unhandledOut, err := os.Create(unhandledPath)
	if err != nil {
		return fmt.Errorf("failed to create unhandled output %s: %w", unhandledPath, err)
	}
	defer unhandledOut.Close()

	fmt.Printf("Transcribing %d out-of-vocabulary words...\n", len(resolution.OOV))
	report, err := p.transcriber.TranscribeAll(ctx, resolution.OOV, unhandledOut)
	if err != nil {
		return err
	}

	if p.flags.ExportDB != "" {
		if err := p.exportDB(words, lex, report); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: SQLite export failed: %v\n", err)
		} else {
			fmt.Printf("Compiled lexicon database: %s\n", p.flags.ExportDB)
		}
	}

	p.printSummary(words.Len(), resolution, report)
	return nil
}

// RunWord transcribes a single word and prints the resulting lexicon line.
func (p *Pipeline) RunWord(ctx context.Context, word string) error {
	phones, multiPass, err := p.transcriber.Transcribe(ctx, word)
	if err != nil {
		return fmt.Errorf("G2P failed for '%s': %w", word, err)
	}
	if multiPass {
		fmt.Fprintf(os.Stderr, "Warning: '%s' produced multiple phonemization passes\n", word)
	}
	if phones == "" {
		return fmt.Errorf("no transcription produced for '%s'", word)
	}

	fmt.Printf("%s  %s\n", strings.ToUpper(word), phones)
	if p.badPhonemes.Len() > 0 {
		fmt.Fprintf(os.Stderr, "Warning: unmapped IPA units: %s\n",
			strings.Join(p.badPhonemes.Units(), ", "))
	}
	return nil
}

// exportDB compiles the dictionary hits and the synthesized transcriptions
// into a single SQLite database.
func (p *Pipeline) exportDB(words *vocab.Set, lex *lexicon.Lexicon, report *transcribe.Report) error {
	exporter := lexdb.NewExporter()

	for _, word := range words.Words() {
		if phones, ok := lex.Phones(word); ok {
			exporter.Add(word, phones, lexdb.SourceDictionary)
		}
	}
	for word, phones := range report.Transcriptions {
		exporter.Add(word, phones, lexdb.SourceG2P)
	}

	return exporter.Export(p.flags.ExportDB)
}

func (p *Pipeline) printSummary(total int, resolution *lexicon.Resolution, report *transcribe.Report) {
	fmt.Printf("\n=== Lexicon Build Summary ===\n")
	fmt.Printf("Vocabulary:  %d words\n", total)
	fmt.Printf("Resolved:    %d from dictionary\n", resolution.ResolvedCount)
	fmt.Printf("Synthesized: %d via G2P\n", report.Written)
	if report.Skipped > 0 {
		fmt.Printf("Unhandled:   %d words (%s)\n", report.Skipped,
			strings.Join(report.Unhandled, ", "))
	}
	if report.MultiPass > 0 {
		fmt.Printf("Multi-pass anomalies: %d\n", report.MultiPass)
	}
	if p.badPhonemes.Len() > 0 {
		fmt.Printf("Unmapped IPA units: %d (%s)\n", p.badPhonemes.Len(),
			strings.Join(p.badPhonemes.Units(), ", "))
	}
	fmt.Printf("=============================\n")
}
