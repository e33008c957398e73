package translation

import (
	"context"
	"log/slog"
	"sync"

	"codeberg.org/snonux/textlens/internal"
	"codeberg.org/snonux/textlens/internal/metrics"
)

// Cache stores translations by key
type Cache interface {
	// Get returns the cached translation and whether it was found
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, translation string) error
	Ping(ctx context.Context) error
	Close() error
}

// TranslationCache stores translations in memory
type TranslationCache struct {
	mu           sync.RWMutex
	translations map[string]string
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		translations: make(map[string]string),
	}
}

// Get retrieves a translation from the cache
func (tc *TranslationCache) Get(ctx context.Context, key string) (string, bool, error) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	translation, ok := tc.translations[key]
	return translation, ok, nil
}

// Set adds a translation to the cache
func (tc *TranslationCache) Set(ctx context.Context, key, translation string) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.translations[key] = translation
	return nil
}

// Ping implements Cache
func (tc *TranslationCache) Ping(ctx context.Context) error { return nil }

// Close implements Cache
func (tc *TranslationCache) Close() error { return nil }

// CachedTranslator serves repeated translations from a Cache. Cache errors
// are logged and never fail a translation.
type CachedTranslator struct {
	next    Translator
	cache   Cache
	metrics *metrics.Metrics
}

// NewCachedTranslator wraps next with cache. m may be nil.
func NewCachedTranslator(next Translator, cache Cache, m *metrics.Metrics) *CachedTranslator {
	return &CachedTranslator{next: next, cache: cache, metrics: m}
}

// Translate implements Translator
func (c *CachedTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	key := internal.CacheKey(source, target, text)

	cached, found, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		slog.Warn("Translation cache lookup failed", "key", key, "error", err)
		c.observe("error")
	case found:
		slog.Debug("Translation cache hit", "key", key)
		c.observe("hit")
		return cached, nil
	default:
		c.observe("miss")
	}

	translation, err := c.next.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}

	if err := c.cache.Set(ctx, key, translation); err != nil {
		slog.Warn("Failed to store translation in cache", "key", key, "error", err)
	}
	return translation, nil
}

func (c *CachedTranslator) observe(result string) {
	if c.metrics != nil {
		c.metrics.CacheLookups.WithLabelValues(result).Inc()
	}
}
