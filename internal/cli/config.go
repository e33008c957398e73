package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"codeberg.org/snonux/textlens/internal/metrics"
	"codeberg.org/snonux/textlens/internal/processor"
	"codeberg.org/snonux/textlens/internal/sentiment"
	"codeberg.org/snonux/textlens/internal/server"
	"codeberg.org/snonux/textlens/internal/textstats"
	"codeberg.org/snonux/textlens/internal/translation"
)

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.gemini_key")
}

// DefaultCachePath returns the default SQLite translation cache location
func DefaultCachePath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "textlens", "translations.db")
}

// TranslationConfig builds the translation chain settings from viper
func TranslationConfig() translation.Config {
	cfg := translation.DefaultConfig()

	if v := viper.GetString("translation.provider"); v != "" {
		cfg.Provider = v
	}
	cfg.Model = viper.GetString("translation.model")
	cfg.BaseURL = viper.GetString("translation.base_url")
	cfg.OpenAIKey = GetOpenAIKey()
	cfg.GeminiKey = GetGeminiKey()
	if d := viper.GetDuration("translation.timeout"); d > 0 {
		cfg.Timeout = d
	}

	if v := viper.GetString("cache.backend"); v != "" {
		cfg.CacheBackend = v
	}
	cfg.CachePath = viper.GetString("cache.path")
	if cfg.CachePath == "" {
		cfg.CachePath = DefaultCachePath()
	}
	cfg.RedisURL = viper.GetString("cache.redis_url")
	if d := viper.GetDuration("cache.ttl"); d > 0 {
		cfg.CacheTTL = d
	}

	return cfg
}

// ProcessorOptions builds the analysis options from viper
func ProcessorOptions() processor.Options {
	opts := processor.DefaultOptions()

	if v := viper.GetString("translation.source"); v != "" {
		opts.Source = v
	}
	if v := viper.GetString("translation.target"); v != "" {
		opts.Target = v
	}
	if v := viper.GetInt("analysis.top_words"); v > 0 {
		opts.TopWords = v
	}
	if v := viper.GetInt("analysis.max_sentences"); v > 0 {
		opts.MaxSentences = v
	}

	return opts
}

// StopWords returns the configured stop words, or the built-in list
func StopWords() textstats.StopWords {
	words := viper.GetStringSlice("analysis.stop_words")
	if len(words) == 0 {
		words = textstats.DefaultStopWords
	}
	return textstats.NewStopWords(words...)
}

// ServerConfig builds the HTTP server settings. server.addr is bound to the
// serve --addr flag, so it always carries at least the flag default.
func ServerConfig() server.Config {
	cfg := server.DefaultConfig()
	if addr := viper.GetString("server.addr"); addr != "" {
		cfg.Addr = addr
	}
	return cfg
}

// NewPipeline wires translator, scorer and counter into a processor. The
// returned cache may be nil; otherwise the caller closes it.
func NewPipeline(ctx context.Context, m *metrics.Metrics) (*processor.Processor, translation.Cache, error) {
	translator, cache, err := translation.New(ctx, TranslationConfig(), m)
	if err != nil {
		return nil, nil, err
	}

	p := processor.NewProcessor(
		translator,
		sentiment.NewVaderScorer(),
		textstats.NewCounter(StopWords()),
		ProcessorOptions(),
		m,
	)
	return p, cache, nil
}
