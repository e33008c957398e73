package translation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func newChatServer(t *testing.T, content string, status int) (*httptest.Server, *[]string) {
	t.Helper()

	var prompts []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("invalid request body: %v", err)
		}
		for _, m := range req.Messages {
			prompts = append(prompts, m.Content)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			io.WriteString(w, `{"error":{"message":"boom","type":"server_error"}}`)
			return
		}
		resp := map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   req.Model,
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, &prompts
}

func TestNewOpenAITranslator(t *testing.T) {
	translator := NewOpenAITranslator("test-api-key", "")

	if translator == nil {
		t.Fatal("NewOpenAITranslator returned nil")
	}
	if translator.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", translator.apiKey)
	}
	if translator.model != "gpt-4o-mini" {
		t.Errorf("Expected default model gpt-4o-mini, got %s", translator.model)
	}
	if translator.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestOpenAITranslator_NoAPIKey(t *testing.T) {
	translator := NewOpenAITranslator("", "")

	_, err := translator.Translate(context.Background(), "hola", "es", "en")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey, got: %v", err)
	}
}

func TestOpenAITranslator_Translate(t *testing.T) {
	srv, prompts := newChatServer(t, "  The dog runs fast.\n", http.StatusOK)
	translator := NewOpenAITranslatorWithBaseURL("test-key", "gpt-4o-mini", srv.URL+"/v1")

	got, err := translator.Translate(context.Background(), "El perro corre rápido.", "es", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "The dog runs fast." {
		t.Errorf("Translate() = %q, want trimmed translation", got)
	}

	joined := strings.Join(*prompts, "\n")
	if !strings.Contains(joined, "Spanish") || !strings.Contains(joined, "English") {
		t.Errorf("prompt does not name the languages: %q", joined)
	}
	if !strings.Contains(joined, "El perro corre rápido.") {
		t.Errorf("prompt does not contain the text: %q", joined)
	}
}

func TestOpenAITranslator_EmptyAnswer(t *testing.T) {
	srv, _ := newChatServer(t, "   ", http.StatusOK)
	translator := NewOpenAITranslatorWithBaseURL("test-key", "", srv.URL+"/v1")

	_, err := translator.Translate(context.Background(), "hola", "es", "en")
	if !errors.Is(err, ErrEmptyTranslation) {
		t.Errorf("Expected ErrEmptyTranslation, got %v", err)
	}
}

func TestOpenAITranslator_ServerError(t *testing.T) {
	srv, _ := newChatServer(t, "", http.StatusBadRequest)
	translator := NewOpenAITranslatorWithBaseURL("test-key", "", srv.URL+"/v1")

	if _, err := translator.Translate(context.Background(), "hola", "es", "en"); err == nil {
		t.Error("Expected error from failing server")
	}
}

func TestOpenAITranslator_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	translator := NewOpenAITranslator(apiKey, "")
	translation, err := translator.Translate(context.Background(), "La manzana es roja.", "es", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if translation == "" {
		t.Error("Got empty translation")
	}
	t.Logf("Translation: %s", translation)
}

func TestGeminiTranslator_NoAPIKey(t *testing.T) {
	translator, err := NewGeminiTranslator(context.Background(), "", "")
	if err != nil {
		t.Fatalf("NewGeminiTranslator without key failed: %v", err)
	}
	if translator.model != DefaultGeminiModel {
		t.Errorf("Expected model %s, got %s", DefaultGeminiModel, translator.model)
	}

	_, err = translator.Translate(context.Background(), "Hola", "es", "en")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey, got %v", err)
	}
}

func TestGeminiTranslator_Integration(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: GEMINI_API_KEY not set")
	}

	translator, err := NewGeminiTranslator(context.Background(), apiKey, "")
	if err != nil {
		t.Fatalf("NewGeminiTranslator failed: %v", err)
	}
	translation, err := translator.Translate(context.Background(), "El cielo es azul.", "es", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	t.Logf("Translation: %s", translation)
}

func TestNoopTranslator(t *testing.T) {
	got, err := NoopTranslator{}.Translate(context.Background(), "hola", "es", "en")
	if err != nil || got != "hola" {
		t.Errorf("NoopTranslator = %q, %v", got, err)
	}
}

func TestLanguageName(t *testing.T) {
	tests := map[string]string{
		"es": "Spanish",
		"EN": "English",
		"xx": "xx",
	}
	for code, want := range tests {
		if got := LanguageName(code); got != want {
			t.Errorf("LanguageName(%q) = %q, want %q", code, got, want)
		}
	}
}
