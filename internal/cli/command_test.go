package cli

import (
	"strings"
	"testing"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "lexibuild [word]" {
		t.Errorf("Expected Use to be 'lexibuild [word]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Pronunciation Lexicon Builder") {
		t.Errorf("Expected Short description to contain 'Pronunciation Lexicon Builder'")
	}

	// Test that flags are set up
	flagTests := []string{
		"log",
		"lexicon",
		"output",
		"resolved-file",
		"unhandled-file",
		"export-db",
		"list-models",
		"g2p",
		"lang",
		"g2p-timeout",
		"openai-model",
		"keep-case",
	}

	for _, name := range flagTests {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected flag %q to be registered", name)
		}
	}

	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("Expected persistent flag 'config' to be registered")
	}
}

func TestFlagDefaultsOnCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if got := cmd.Flags().Lookup("g2p").DefValue; got != "goruut" {
		t.Errorf("g2p default = %q, want goruut", got)
	}
	if got := cmd.Flags().Lookup("lang").DefValue; got != "en-us" {
		t.Errorf("lang default = %q, want en-us", got)
	}
	if got := cmd.Flags().Lookup("output").DefValue; got != "." {
		t.Errorf("output default = %q, want .", got)
	}
}
