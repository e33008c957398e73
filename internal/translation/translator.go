package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Default language pair and request settings
const (
	DefaultSource  = "es"
	DefaultTarget  = "en"
	DefaultTimeout = 30 * time.Second
)

var (
	// ErrMissingAPIKey is returned when a provider has no API key configured
	ErrMissingAPIKey = errors.New("API key not found")
	// ErrEmptyTranslation is returned when a provider answers without text
	ErrEmptyTranslation = errors.New("no translation returned")
)

// Translator translates text from a source to a target language
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

var languageNames = map[string]string{
	"es": "Spanish",
	"en": "English",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
}

// LanguageName returns the English name of a language code, or the code itself
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

func buildPrompt(text, source, target string) string {
	return fmt.Sprintf("Translate the following %s text to %s. Keep the sentence boundaries and punctuation. "+
		"Respond with only the %s translation, nothing else.\n\n%s",
		LanguageName(source), LanguageName(target), LanguageName(target), text)
}

// OpenAITranslator translates with an OpenAI chat completion model
type OpenAITranslator struct {
	apiKey  string
	model   string
	timeout time.Duration
	client  *openai.Client
}

// NewOpenAITranslator creates a new translator instance
func NewOpenAITranslator(apiKey, model string) *OpenAITranslator {
	return NewOpenAITranslatorWithBaseURL(apiKey, model, "")
}

// NewOpenAITranslatorWithBaseURL creates a translator talking to an
// OpenAI-compatible endpoint. An empty baseURL uses the public API.
func NewOpenAITranslatorWithBaseURL(apiKey, model, baseURL string) *OpenAITranslator {
	if model == "" {
		model = openai.GPT4oMini
	}
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAITranslator{
		apiKey:  apiKey,
		model:   model,
		timeout: DefaultTimeout,
		client:  openai.NewClientWithConfig(config),
	}
}

// SetTimeout changes the per-request timeout
func (t *OpenAITranslator) SetTimeout(d time.Duration) {
	if d > 0 {
		t.timeout = d
	}
}

// Translate implements Translator
func (t *OpenAITranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("OpenAI: %w", ErrMissingAPIKey)
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a professional translator. You never add commentary.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(text, source, target),
			},
		},
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyTranslation
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", ErrEmptyTranslation
	}
	return translation, nil
}

// NoopTranslator returns the text unchanged. Used when no provider is configured.
type NoopTranslator struct{}

// Translate implements Translator
func (NoopTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	return text, nil
}
