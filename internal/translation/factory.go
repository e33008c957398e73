package translation

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/snonux/textlens/internal/metrics"
)

// Config selects and tunes the translation chain
type Config struct {
	Provider  string // "openai", "gemini" or "none"
	Model     string
	OpenAIKey string
	GeminiKey string
	// BaseURL overrides the OpenAI endpoint
	BaseURL string
	Timeout time.Duration

	BreakerFailures uint32
	BreakerTimeout  time.Duration

	CacheBackend string // "memory", "sqlite", "redis" or "none"
	CachePath    string
	RedisURL     string
	CacheTTL     time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Provider:        "openai",
		Timeout:         DefaultTimeout,
		BreakerFailures: DefaultBreakerFailures,
		BreakerTimeout:  DefaultBreakerTimeout,
		CacheBackend:    "memory",
		CacheTTL:        7 * 24 * time.Hour,
	}
}

// NewProvider creates the bare provider named in cfg
func NewProvider(ctx context.Context, cfg Config) (Translator, error) {
	switch cfg.Provider {
	case "openai", "":
		t := NewOpenAITranslatorWithBaseURL(cfg.OpenAIKey, cfg.Model, cfg.BaseURL)
		t.SetTimeout(cfg.Timeout)
		return t, nil
	case "gemini":
		t, err := NewGeminiTranslator(ctx, cfg.GeminiKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		t.SetTimeout(cfg.Timeout)
		return t, nil
	case "none":
		return NoopTranslator{}, nil
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", cfg.Provider)
	}
}

// NewCache creates the cache backend named in cfg. It returns nil for "none".
func NewCache(ctx context.Context, cfg Config) (Cache, error) {
	switch cfg.CacheBackend {
	case "memory", "":
		return NewTranslationCache(), nil
	case "sqlite":
		if cfg.CachePath == "" {
			return nil, fmt.Errorf("sqlite cache requires a path")
		}
		return NewSQLiteCache(cfg.CachePath)
	case "redis":
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("redis cache requires a url")
		}
		return NewRedisCache(ctx, cfg.RedisURL, cfg.CacheTTL)
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.CacheBackend)
	}
}

// New builds provider -> circuit breaker -> cache. The returned cache may be
// nil and must be closed by the caller otherwise. m may be nil.
func New(ctx context.Context, cfg Config, m *metrics.Metrics) (Translator, Cache, error) {
	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Provider == "none" {
		return provider, nil, nil
	}

	var t Translator = NewBreakerTranslator(cfg.Provider, provider, cfg.BreakerFailures, cfg.BreakerTimeout, m)

	cache, err := NewCache(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if cache != nil {
		t = NewCachedTranslator(t, cache, m)
	}

	return t, cache, nil
}
