package translation

import (
	"context"
	"errors"
	"sync"
)

var errProvider = errors.New("provider down")

// countingTranslator upper-cases text and counts calls
type countingTranslator struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (c *countingTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.fail {
		return "", errProvider
	}
	return "EN:" + text, nil
}

func (c *countingTranslator) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// brokenCache fails every operation
type brokenCache struct{}

func (brokenCache) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("cache down")
}
func (brokenCache) Set(ctx context.Context, key, translation string) error {
	return errors.New("cache down")
}
func (brokenCache) Ping(ctx context.Context) error { return errors.New("cache down") }
func (brokenCache) Close() error                   { return nil }
