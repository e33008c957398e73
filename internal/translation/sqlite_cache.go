package translation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteCache persists translations in a SQLite database
type SQLiteCache struct {
	db *sql.DB
}

// NewSQLiteCache opens (and creates if needed) the cache database at dbPath
func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS translations (
			key         TEXT PRIMARY KEY,
			translation TEXT NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create translations table: %w", err)
	}

	slog.Info("SQLite translation cache initialized", "path", dbPath)
	return &SQLiteCache{db: db}, nil
}

// Get implements Cache
func (c *SQLiteCache) Get(ctx context.Context, key string) (string, bool, error) {
	var translation string
	err := c.db.QueryRowContext(ctx, `SELECT translation FROM translations WHERE key = ?`, key).Scan(&translation)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read translation: %w", err)
	}
	return translation, true, nil
}

// Set implements Cache
func (c *SQLiteCache) Set(ctx context.Context, key, translation string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO translations (key, translation) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET translation = excluded.translation, created_at = CURRENT_TIMESTAMP
	`, key, translation)
	if err != nil {
		return fmt.Errorf("failed to write translation: %w", err)
	}
	return nil
}

// Ping implements Cache
func (c *SQLiteCache) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close implements Cache
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
