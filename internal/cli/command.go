package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/lexibuild/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lexibuild [word]",
		Short: "Pronunciation Lexicon Builder",
		Long: `lexibuild builds a pronunciation lexicon from a runtime log.

It extracts the vocabulary the synthesizer was asked to pronounce,
resolves each word against a canonical dictionary, and synthesizes
ARPAbet transcriptions for the rest via grapheme-to-phoneme inference.

Examples:
  lexibuild --log runtime.log --lexicon librispeech-lexicon.txt
  lexibuild --log runtime.log --lexicon dict.txt --export-db lexicon.db
  lexibuild FOOBARXYZ          # Transcribe a single word to stdout`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.lexibuild.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.LogFile, "log", "", "Runtime log to extract the vocabulary from")
	cmd.Flags().StringVar(&flags.LexiconFile, "lexicon", "", "Canonical pronunciation dictionary")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory")
	cmd.Flags().StringVar(&flags.ResolvedFile, "resolved-file", flags.ResolvedFile, "Resolved-words output filename")
	cmd.Flags().StringVar(&flags.UnhandledFile, "unhandled-file", flags.UnhandledFile, "Synthesized-words output filename")
	cmd.Flags().StringVar(&flags.ExportDB, "export-db", "", "Also compile the merged lexicon into a SQLite file")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List OpenAI models usable for G2P with the current API key")

	// G2P flags
	cmd.Flags().StringVar(&flags.G2PProvider, "g2p", flags.G2PProvider, "G2P provider: goruut or openai")
	cmd.Flags().StringVar(&flags.Language, "lang", flags.Language, "Locale tag for G2P inference")
	cmd.Flags().DurationVar(&flags.G2PTimeout, "g2p-timeout", flags.G2PTimeout, "Per-word G2P inference bound")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for the openai G2P provider")

	// Recasing
	cmd.Flags().StringSliceVar(&flags.KeepCase, "keep-case", nil, "Extra acronyms exempt from lower-casing (extends the built-in list)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("g2p.provider", cmd.Flags().Lookup("g2p"))
	viper.BindPFlag("g2p.language", cmd.Flags().Lookup("lang"))
	viper.BindPFlag("g2p.timeout", cmd.Flags().Lookup("g2p-timeout"))
	viper.BindPFlag("g2p.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.resolved_file", cmd.Flags().Lookup("resolved-file"))
	viper.BindPFlag("output.unhandled_file", cmd.Flags().Lookup("unhandled-file"))
	viper.BindPFlag("recase.keep", cmd.Flags().Lookup("keep-case"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".lexibuild" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lexibuild")
	}

	// Environment variables
	viper.SetEnvPrefix("LEXIBUILD")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("g2p.openai_key")
}
