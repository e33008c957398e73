package models

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrMissingAPIKey is returned when no OpenAI key is configured
var ErrMissingAPIKey = errors.New("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure translation.openai_key in .textlens.yaml")

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return NewListerWithBaseURL(apiKey, "")
}

// NewListerWithBaseURL creates a lister for an OpenAI-compatible endpoint
func NewListerWithBaseURL(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}
}

// Catalog holds model IDs grouped by what textlens can do with them
type Catalog struct {
	Translation []string
	Other       []string
}

// isTranslationModel reports whether a model ID is a chat model that can translate
func isTranslationModel(id string) bool {
	if strings.Contains(id, "tts") || strings.Contains(id, "audio") ||
		strings.Contains(id, "realtime") || strings.Contains(id, "transcribe") ||
		strings.Contains(id, "search") || strings.Contains(id, "image") {
		return false
	}
	return strings.HasPrefix(id, "gpt-") || strings.Contains(id, "chat") ||
		strings.HasPrefix(id, "o1") || strings.HasPrefix(id, "o3") || strings.HasPrefix(id, "o4")
}

// Catalog fetches and categorizes the available models
func (l *Lister) Catalog(ctx context.Context) (Catalog, error) {
	var c Catalog
	if l.apiKey == "" {
		return c, ErrMissingAPIKey
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return c, fmt.Errorf("failed to list models: %w", err)
	}

	for _, model := range models.Models {
		if isTranslationModel(model.ID) {
			c.Translation = append(c.Translation, model.ID)
		} else {
			c.Other = append(c.Other, model.ID)
		}
	}

	sort.Strings(c.Translation)
	sort.Strings(c.Other)
	return c, nil
}

// ListAvailableModels writes the available models to w, translation models first
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	c, err := l.Catalog(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available OpenAI Models:")
	fmt.Fprintln(w, "\nChat/Translation Models (use with --model):")
	if len(c.Translation) == 0 {
		fmt.Fprintln(w, "  No chat models found")
	}
	for _, model := range c.Translation {
		fmt.Fprintf(w, "  %s\n", model)
	}

	if len(c.Other) > 0 {
		fmt.Fprintf(w, "\n... and %d other models not usable for translation\n", len(c.Other))
	}

	return nil
}
