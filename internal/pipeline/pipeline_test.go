package pipeline

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/lexibuild/internal/cli"
	"codeberg.org/snonux/lexibuild/internal/testutil"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func testFlags(t *testing.T) (*cli.Flags, string) {
	t.Helper()
	dir := t.TempDir()

	flags := cli.NewFlags()
	flags.LogFile = filepath.Join(dir, "runtime.log")
	flags.LexiconFile = filepath.Join(dir, "lexicon.txt")
	flags.OutputDir = filepath.Join(dir, "out")

	return flags, dir
}

func TestRunEndToEnd(t *testing.T) {
	flags, _ := testFlags(t)

	writeFile(t, flags.LogFile, "requested 'HELLO' ok\nrequested 'FOOBARXYZ' ok\n")
	writeFile(t, flags.LexiconFile, "HELLO  HH AH L OW1\n")

	mock := &testutil.MockPhonemizer{
		Phonemes: map[string][]string{
			"foobarxyz": {"f", "ˈu", "b", "ɑ", "ɹ"},
		},
	}
	p := NewWithPhonemizer(flags, mock)

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	resolved, err := os.ReadFile(filepath.Join(flags.OutputDir, "words.txt"))
	if err != nil {
		t.Fatalf("Failed to read resolved output: %v", err)
	}
	if string(resolved) != "HELLO  HH AH L OW1\n" {
		t.Errorf("Resolved output = %q, want exactly the HELLO line", resolved)
	}

	unhandled, err := os.ReadFile(filepath.Join(flags.OutputDir, "unhandled.txt"))
	if err != nil {
		t.Fatalf("Failed to read unhandled output: %v", err)
	}
	if string(unhandled) != "FOOBARXYZ  F UW1 B AA R\n" {
		t.Errorf("Unhandled output = %q, want upper-cased FOOBARXYZ line", unhandled)
	}

	// The G2P step must only see the OOV word, recased.
	if len(mock.Calls) != 1 || mock.Calls[0] != "foobarxyz/en-us" {
		t.Errorf("Phonemizer calls = %v, want [foobarxyz/en-us]", mock.Calls)
	}
}

func TestRunWithExportDB(t *testing.T) {
	flags, dir := testFlags(t)
	flags.ExportDB = filepath.Join(dir, "lexicon.db")

	writeFile(t, flags.LogFile, "requested 'HELLO' ok\nrequested 'FOOBARXYZ' ok\n")
	writeFile(t, flags.LexiconFile, "HELLO  HH AH L OW1\n")

	mock := &testutil.MockPhonemizer{
		Phonemes: map[string][]string{
			"foobarxyz": {"f", "ˈu"},
		},
	}
	p := NewWithPhonemizer(flags, mock)

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	db, err := sql.Open("sqlite3", flags.ExportDB)
	if err != nil {
		t.Fatalf("Failed to open exported database: %v", err)
	}
	defer db.Close()

	var source string
	if err := db.QueryRow("SELECT source FROM lexicon WHERE word = 'HELLO'").Scan(&source); err != nil {
		t.Fatalf("HELLO lookup failed: %v", err)
	}
	if source != "dictionary" {
		t.Errorf("HELLO source = %q, want dictionary", source)
	}

	if err := db.QueryRow("SELECT source FROM lexicon WHERE word = 'FOOBARXYZ'").Scan(&source); err != nil {
		t.Fatalf("FOOBARXYZ lookup failed: %v", err)
	}
	if source != "g2p" {
		t.Errorf("FOOBARXYZ source = %q, want g2p", source)
	}
}

func TestRunMissingLog(t *testing.T) {
	flags, _ := testFlags(t)
	writeFile(t, flags.LexiconFile, "HELLO  HH AH L OW1\n")

	p := NewWithPhonemizer(flags, &testutil.MockPhonemizer{})
	err := p.Run(context.Background())
	if err == nil {
		t.Fatal("Expected error for missing log file")
	}
	if !strings.Contains(err.Error(), "runtime.log") {
		t.Errorf("Error should name the missing resource, got: %v", err)
	}
}

func TestRunSurvivesG2PFailures(t *testing.T) {
	flags, _ := testFlags(t)

	writeFile(t, flags.LogFile, "requested 'AAA' ok\nrequested 'BBB' ok\n")
	writeFile(t, flags.LexiconFile, "ZZZ  Z\n")

	// Neither OOV word gets a transcription; the run must still finish and
	// produce (empty) outputs.
	p := NewWithPhonemizer(flags, &testutil.MockPhonemizer{})
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run should not fail on per-word G2P gaps: %v", err)
	}

	unhandled, err := os.ReadFile(filepath.Join(flags.OutputDir, "unhandled.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(unhandled) != 0 {
		t.Errorf("Expected empty unhandled output, got %q", unhandled)
	}
}

func TestRunWord(t *testing.T) {
	flags := cli.NewFlags()
	mock := &testutil.MockPhonemizer{
		Phonemes: map[string][]string{
			"hello": {"h", "ə", "l", "ˈoʊ"},
		},
	}
	p := NewWithPhonemizer(flags, mock)

	if err := p.RunWord(context.Background(), "HELLO"); err != nil {
		t.Fatalf("RunWord error: %v", err)
	}

	if err := p.RunWord(context.Background(), "UNKNOWNWORD"); err == nil {
		t.Error("Expected error for word with no transcription")
	}
}
