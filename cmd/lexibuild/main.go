package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/lexibuild/internal/cli"
	"codeberg.org/snonux/lexibuild/internal/models"
	"codeberg.org/snonux/lexibuild/internal/pipeline"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	p, err := pipeline.New(flags)
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Single-word mode
	if len(args) > 0 {
		return p.RunWord(ctx, args[0])
	}

	if flags.LogFile == "" || flags.LexiconFile == "" {
		return fmt.Errorf("please provide --log and --lexicon, or a single word to transcribe")
	}

	if err := p.Run(ctx); err != nil {
		return err
	}

	fmt.Printf("\nDone! Lexicon written to: %s\n", flags.OutputDir)
	return nil
}
