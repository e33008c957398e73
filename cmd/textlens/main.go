package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/textlens/internal/archive"
	"codeberg.org/snonux/textlens/internal/cli"
	"codeberg.org/snonux/textlens/internal/input"
	"codeberg.org/snonux/textlens/internal/logging"
	"codeberg.org/snonux/textlens/internal/metrics"
	"codeberg.org/snonux/textlens/internal/models"
	"codeberg.org/snonux/textlens/internal/processor"
	"codeberg.org/snonux/textlens/internal/report"
	"codeberg.org/snonux/textlens/internal/server"
	"codeberg.org/snonux/textlens/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root and serve commands
	rootCmd := cli.CreateRootCommand(flags)
	serveCmd := cli.CreateServeCommand(flags)
	rootCmd.AddCommand(serveCmd)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
		logging.InitLogger(viper.GetString("log.level"), viper.GetString("log.format"))
	})

	// Set the run functions
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd, args, flags)
	}
	serveCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runServe()
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput returns the text to analyze from the file flag, the arguments or stdin
func readInput(args []string, flags *cli.Flags) (string, error) {
	if flags.InputFile != "" {
		text, err := input.ReadFile(flags.InputFile)
		if err != nil {
			return "", err
		}
		slog.Debug("Loaded file", "file", flags.InputFile, "preview", input.Preview(text, input.PreviewLimit))
		return text, nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		return input.ReadAll(os.Stdin)
	}

	return "", nil
}

func runAnalyze(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Handle --archive-cache flag
	if flags.ArchiveCache {
		archived, err := archive.ArchiveCache(cli.TranslationConfig().CachePath)
		if err != nil {
			return fmt.Errorf("failed to archive cache: %w", err)
		}
		fmt.Printf("Translation cache archived to: %s\n", archived)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewListerWithBaseURL(cli.GetOpenAIKey(), viper.GetString("translation.base_url"))
		return lister.ListAvailableModels(ctx, os.Stdout)
	}

	text, err := readInput(args, flags)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "Please enter some text to analyze (argument, --file or stdin).")
		return nil
	}

	proc, cache, err := cli.NewPipeline(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to set up analysis: %w", err)
	}
	if cache != nil {
		defer cache.Close()
	}

	result, err := proc.Analyze(ctx, text)
	if errors.Is(err, processor.ErrEmptyInput) {
		fmt.Fprintln(os.Stderr, "Please enter some text to analyze.")
		return nil
	}
	if err != nil {
		return err
	}

	return writeResult(os.Stdout, result, flags, proc.Options())
}

// writeResult lists as many sentence pairs as the processor annotated
func writeResult(w io.Writer, result *processor.Result, flags *cli.Flags, procOpts processor.Options) error {
	if flags.JSON {
		return report.WriteJSON(w, result)
	}

	opts := report.DefaultOptions()
	opts.MaxSentences = procOpts.MaxSentences
	opts.ShowTexts = !flags.NoTexts
	return report.WriteText(w, result, opts)
}

func runGracefulShutdown(srv *server.Server, cache translation.Cache) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		if cache != nil {
			if err := cache.Close(); err != nil {
				slog.Error("Failed to close translation cache", "error", err)
			}
		}

		close(done)
	}()

	return done
}

func runServe() error {
	ctx := context.Background()

	reg := metrics.NewRegistry()
	m := metrics.New(reg)

	proc, cache, err := cli.NewPipeline(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to set up analysis: %w", err)
	}

	var checks []server.HealthCheck
	if cache != nil {
		checks = append(checks, server.HealthCheck{Name: "translation_cache", Check: cache.Ping})
	}

	srv := server.NewServer(cli.ServerConfig(), proc, reg, checks)
	done := runGracefulShutdown(srv, cache)

	if err := srv.Start(); err != nil {
		slog.Error("Server error", "error", err)
		return err
	}

	<-done
	return nil
}
