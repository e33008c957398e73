package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiTranslator translates with a Google Gemini model
type GeminiTranslator struct {
	apiKey  string
	model   string
	timeout time.Duration
	client  *genai.Client
}

// NewGeminiTranslator creates a Gemini backed translator. Without an API key
// the translator is still created and every Translate call fails.
func NewGeminiTranslator(ctx context.Context, apiKey, model string) (*GeminiTranslator, error) {
	if model == "" {
		model = DefaultGeminiModel
	}

	g := &GeminiTranslator{
		apiKey:  apiKey,
		model:   model,
		timeout: DefaultTimeout,
	}
	if apiKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	g.client = client
	return g, nil
}

// SetTimeout changes the per-request timeout
func (g *GeminiTranslator) SetTimeout(d time.Duration) {
	if d > 0 {
		g.timeout = d
	}
}

// Translate implements Translator
func (g *GeminiTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("Gemini: %w", ErrMissingAPIKey)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.3),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(text, source, target)), config)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", ErrEmptyTranslation
	}
	return translation, nil
}
