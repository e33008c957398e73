// Package archive rotates the persistent translation cache out of the way
// so the next run starts with an empty one.
package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// sidecars are the SQLite WAL files that belong to a database file
var sidecars = []string{"-wal", "-shm"}

// ArchiveCache moves the cache file at path, and its SQLite sidecar files,
// into an "archive" directory next to it with a timestamp. It returns the
// path of the archived database file.
func ArchiveCache(path string) (string, error) {
	// Check if the cache file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("cache file does not exist: %s", path)
	}

	// Get parent directory and create archive path
	parentDir := filepath.Dir(path)
	archiveDir := filepath.Join(parentDir, "archive")

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext)

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", base, timestamp, ext))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", base, timestamp, ext))
	}

	if err := os.Rename(path, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive cache: %w", err)
	}

	for _, suffix := range sidecars {
		err := os.Rename(path+suffix, archivePath+suffix)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return archivePath, fmt.Errorf("failed to archive %s file: %w", suffix, err)
		}
	}

	return archivePath, nil
}
