package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// CacheKey derives a translation cache key from the language pair and text.
// Format: source:target:md5(text)
func CacheKey(source, target, text string) string {
	hash := md5.Sum([]byte(text))
	return fmt.Sprintf("%s:%s:%s", source, target, hex.EncodeToString(hash[:]))
}

// NewRequestID returns a fresh identifier for an analysis request
func NewRequestID() string {
	return uuid.NewString()
}
