// Package input reads the text to analyze from files and streams.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// PreviewLimit is the number of runes shown when previewing file content
const PreviewLimit = 1000

var (
	// ErrUnsupportedFile is returned for files that are not .txt, .csv or .md
	ErrUnsupportedFile = errors.New("unsupported file type")
	// ErrInvalidUTF8 is returned for content that is not valid UTF-8
	ErrInvalidUTF8 = errors.New("content is not valid UTF-8")
)

// SupportedExtensions lists the accepted file extensions
var SupportedExtensions = []string{".txt", ".csv", ".md"}

// IsSupported reports whether filename has an accepted extension
func IsSupported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ReadFile reads a .txt, .csv or .md file as UTF-8 text
func ReadFile(filename string) (string, error) {
	if !IsSupported(filename) {
		return "", fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedFile,
			filepath.Base(filename), strings.Join(SupportedExtensions, ", "))
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}

	return decode(content)
}

// ReadAll reads UTF-8 text from r, e.g. stdin
func ReadAll(r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return decode(content)
}

func decode(content []byte) (string, error) {
	// Strip a UTF-8 byte order mark
	content = trimBOM(content)
	if !utf8.Valid(content) {
		return "", ErrInvalidUTF8
	}
	return string(content), nil
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}

// Preview returns at most limit runes of s, followed by "..." when cut
func Preview(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
