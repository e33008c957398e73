package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "textlens [text]" {
		t.Errorf("Expected Use to be 'textlens [text]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Sentiment and Word Frequency Analyzer") {
		t.Errorf("Expected Short description to contain 'Sentiment and Word Frequency Analyzer'")
	}

	// Test that flags are set up
	flagTests := []struct {
		name       string
		persistent bool
	}{
		{"config", true},
		{"log-level", true},
		{"log-format", true},
		{"provider", true},
		{"model", true},
		{"source", true},
		{"target", true},
		{"cache", true},
		{"cache-path", true},
		{"stop-words", true},
		{"top-words", true},
		{"max-sentences", true},
		{"file", false},
		{"json", false},
		{"no-texts", false},
		{"list-models", false},
		{"archive-cache", false},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.persistent {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestCreateServeCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	flags := NewFlags()
	root := CreateRootCommand(flags)
	serve := CreateServeCommand(flags)
	root.AddCommand(serve)

	if serve.Use != "serve" {
		t.Errorf("Expected Use to be 'serve', got %s", serve.Use)
	}

	addr := serve.Flags().Lookup("addr")
	if addr == nil {
		t.Fatal("addr flag not found")
	}
	if addr.DefValue != ":8080" {
		t.Errorf("Expected default addr to be :8080, got %s", addr.DefValue)
	}

	if err := serve.Flags().Set("addr", "127.0.0.1:9090"); err != nil {
		t.Fatalf("Failed to set addr: %v", err)
	}
	if got := viper.GetString("server.addr"); got != "127.0.0.1:9090" {
		t.Errorf("Expected server.addr to be 127.0.0.1:9090, got %s", got)
	}
	if flags.Addr != "127.0.0.1:9090" {
		t.Errorf("Expected flags.Addr to be updated, got %s", flags.Addr)
	}
}

func TestSetupFlags(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	// Test default values
	tests := []struct {
		name     string
		expected string
	}{
		{"provider", "openai"},
		{"source", "es"},
		{"target", "en"},
		{"cache", "memory"},
		{"top-words", "10"},
		{"max-sentences", "10"},
		{"log-level", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.PersistentFlags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("%s flag not found", tt.name)
			}
			if flag.DefValue != tt.expected {
				t.Errorf("Expected default %s to be %s, got %s", tt.name, tt.expected, flag.DefValue)
			}
		})
	}

	// Short forms
	if cmd.PersistentFlags().ShorthandLookup("s") == nil {
		t.Error("Expected -s shorthand for --source")
	}
	if cmd.Flags().ShorthandLookup("f") == nil {
		t.Error("Expected -f shorthand for --file")
	}
}

func TestInitConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		check     func(t *testing.T)
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `translation:
  provider: gemini
  gemini_key: test-key
analysis:
  top_words: 5
  stop_words: [el, los]`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
			check: func(t *testing.T) {
				if got := viper.GetString("translation.provider"); got != "gemini" {
					t.Errorf("Expected translation.provider gemini, got %s", got)
				}
				if got := viper.GetInt("analysis.top_words"); got != 5 {
					t.Errorf("Expected analysis.top_words 5, got %d", got)
				}
				if got := viper.GetStringSlice("analysis.stop_words"); len(got) != 2 {
					t.Errorf("Expected 2 stop words, got %v", got)
				}
			},
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				return ""
			},
			check: func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			cfgPath := tt.setupFunc(t)
			InitConfig(cfgPath)
			tt.check(t)

			// Test environment variable prefix
			t.Setenv("TEXTLENS_TEST_VAR", "test-value")
			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}

			// Nested keys map to underscores
			t.Setenv("TEXTLENS_CACHE_BACKEND", "redis")
			if viper.GetString("cache.backend") != "redis" {
				t.Error("Nested environment variable not properly loaded")
			}
		})
	}
}

func TestBindFlagsToViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	pf := cmd.PersistentFlags()
	pf.Set("provider", "gemini")
	pf.Set("target", "fr")
	pf.Set("cache", "sqlite")
	pf.Set("stop-words", "el,los")
	pf.Set("top-words", "3")

	// Test that values are bound
	if got := viper.GetString("translation.provider"); got != "gemini" {
		t.Errorf("Expected translation.provider to be gemini, got %s", got)
	}
	if got := viper.GetString("translation.target"); got != "fr" {
		t.Errorf("Expected translation.target to be fr, got %s", got)
	}
	if got := viper.GetString("cache.backend"); got != "sqlite" {
		t.Errorf("Expected cache.backend to be sqlite, got %s", got)
	}
	if got := viper.GetStringSlice("analysis.stop_words"); len(got) != 2 || got[0] != "el" {
		t.Errorf("Expected analysis.stop_words to be [el los], got %v", got)
	}
	if got := viper.GetInt("analysis.top_words"); got != 3 {
		t.Errorf("Expected analysis.top_words to be 3, got %d", got)
	}
}
