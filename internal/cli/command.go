package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"codeberg.org/snonux/textlens/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textlens [text]",
		Short: "Spanish Text Sentiment and Word Frequency Analyzer",
		Long: `textlens translates Spanish text to English and analyzes it.

It reports sentiment and subjectivity of the translation, the most
frequent significant words, and the original and translated sentences
side by side, each annotated with its own sentiment.

Examples:
  textlens "Me encanta este lugar."   # Analyze text given as argument
  textlens --file notas.md            # Analyze a .txt, .csv or .md file
  cat texto.txt | textlens --json     # Analyze stdin, print JSON
  textlens serve --addr :8080         # Run the HTTP API`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

// CreateServeCommand creates the "serve" subcommand. RunE is set by the caller.
func CreateServeCommand(flags *Flags) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis HTTP API",
		Args:  cobra.NoArgs,
	}

	serveCmd.Flags().StringVar(&flags.Addr, "addr", flags.Addr, "Listen address")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))

	return serveCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.textlens.yaml)")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")

	// Translation flags
	pf.StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: openai, gemini or none")
	pf.StringVar(&flags.Model, "model", "", "Translation model (default: gpt-4o-mini for openai, gemini-2.0-flash for gemini)")
	pf.StringVarP(&flags.SourceLang, "source", "s", flags.SourceLang, "Source language code")
	pf.StringVarP(&flags.TargetLang, "target", "t", flags.TargetLang, "Target language code")

	// Cache flags
	pf.StringVar(&flags.CacheBackend, "cache", flags.CacheBackend, "Translation cache: memory, sqlite, redis or none")
	pf.StringVar(&flags.CachePath, "cache-path", "", "SQLite cache file (default is $HOME/.local/state/textlens/translations.db)")

	// Analysis flags
	pf.StringSliceVar(&flags.StopWords, "stop-words", nil, "Comma separated stop words (replaces the built-in list)")
	pf.IntVar(&flags.TopWords, "top-words", flags.TopWords, "Number of most frequent words to report")
	pf.IntVar(&flags.MaxSentences, "max-sentences", flags.MaxSentences, "Number of sentence pairs to annotate and show")

	// Local flags
	cmd.Flags().StringVarP(&flags.InputFile, "file", "f", "", "Read text from a .txt, .csv or .md file")
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&flags.NoTexts, "no-texts", false, "Do not print the full original and translated texts")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List OpenAI chat models usable for translation")
	cmd.Flags().BoolVar(&flags.ArchiveCache, "archive-cache", false, "Move the SQLite translation cache to an archive directory and exit")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	viper.BindPFlag("log.level", pf.Lookup("log-level"))
	viper.BindPFlag("log.format", pf.Lookup("log-format"))
	viper.BindPFlag("translation.provider", pf.Lookup("provider"))
	viper.BindPFlag("translation.model", pf.Lookup("model"))
	viper.BindPFlag("translation.source", pf.Lookup("source"))
	viper.BindPFlag("translation.target", pf.Lookup("target"))
	viper.BindPFlag("cache.backend", pf.Lookup("cache"))
	viper.BindPFlag("cache.path", pf.Lookup("cache-path"))
	viper.BindPFlag("analysis.stop_words", pf.Lookup("stop-words"))
	viper.BindPFlag("analysis.top_words", pf.Lookup("top-words"))
	viper.BindPFlag("analysis.max_sentences", pf.Lookup("max-sentences"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A .env file in the working directory is optional
	_ = gotenv.Load()

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

		// Search config in home directory with name ".textlens" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".textlens")
	}

	// Environment variables, e.g. TEXTLENS_TRANSLATION_PROVIDER
	viper.SetEnvPrefix("TEXTLENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
