package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// WriteTempFile writes content to name inside a fresh temp directory and
// returns the full path
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	CreateTestFile(t, path, []byte(content))
	return path
}

// AssertContains checks that s contains every one of parts
func AssertContains(t *testing.T, s string, parts ...string) {
	t.Helper()

	for _, p := range parts {
		if !strings.Contains(s, p) {
			t.Errorf("Expected output to contain %q, got:\n%s", p, s)
		}
	}
}

// AssertNotContains checks that s contains none of parts
func AssertNotContains(t *testing.T, s string, parts ...string) {
	t.Helper()

	for _, p := range parts {
		if strings.Contains(s, p) {
			t.Errorf("Expected output not to contain %q, got:\n%s", p, s)
		}
	}
}

// SpanishSample is a short Spanish text with its sentence aligned translation
var SpanishSample = struct {
	Original   string
	Translated string
}{
	Original:   "Me encanta este lugar. La comida es terrible! ¿Volveremos mañana?",
	Translated: "I love this place. The food is terrible! Will we come back tomorrow?",
}
