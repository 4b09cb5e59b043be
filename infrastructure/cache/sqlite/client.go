// ABOUTME: SQLite-backed cache so acquired design documents survive preview server restarts
// ABOUTME: Single cache table with unix expiry timestamps; expiry zero means the entry never expires

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// maxKeyLength caps cache keys. Keys are derived from export URLs and
	// anything longer is almost certainly malformed input.
	maxKeyLength = 255

	// maxValueSize caps stored documents at 1MB. Oversized documents are
	// rejected here and simply go uncached; callers treat that as a miss.
	maxValueSize = 1024 * 1024

	cleanupInterval = 5 * time.Minute
)

// Client implements the Cache interface on a local SQLite file.
type Client struct {
	db        *sql.DB
	filePath  string
	done      chan struct{}
	closeOnce sync.Once
}

// NewSQLiteCache opens (or creates) the database file and starts the
// background cleanup of expired entries.
func NewSQLiteCache(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "designmount.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		done:     make(chan struct{}),
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go client.cleanupRoutine()

	return client, nil
}

// initSchema creates the cache table if it doesn't exist.
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`

	_, err := c.db.Exec(query)
	return err
}

// validateKey rejects keys the cache cannot store safely. Parameterized
// queries already neutralize injection, so this only guards against keys
// that are empty, oversized or carry null bytes.
func validateKey(key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long: max %d characters", maxKeyLength)
	}
	if strings.Contains(key, "\x00") {
		return errors.New("key cannot contain null bytes")
	}
	return nil
}

// Get retrieves a value from the cache. Expired and unknown keys both
// report an error so callers can treat either as a miss.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var value []byte

	query := "SELECT value FROM cache WHERE key = ? AND (expiry = 0 OR expiry > ?)"
	err := c.db.QueryRowContext(ctx, query, key, time.Now().Unix()).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, errors.New("key not found or expired")
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache. A ttl of zero or less stores the entry
// with no expiry.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}

	if len(value) > maxValueSize {
		return fmt.Errorf("value too large: max %d bytes", maxValueSize)
	}

	var expiry int64
	if ttl > 0 {
		expiry = time.Now().Add(ttl).Unix()
	}

	query := `
		INSERT OR REPLACE INTO cache (key, value, expiry)
		VALUES (?, ?, ?)
	`

	_, err := c.db.ExecContext(ctx, query, key, value, expiry)
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache. Deleting an absent key is not an
// error.
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	query := "DELETE FROM cache WHERE key = ?"
	_, err := c.db.ExecContext(ctx, query, key)

	if err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// Clear removes all values from the cache.
func (c *Client) Clear(ctx context.Context) error {
	query := "DELETE FROM cache"
	_, err := c.db.ExecContext(ctx, query)

	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	return nil
}

// cleanupRoutine periodically removes expired entries until Close.
func (c *Client) cleanupRoutine() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.done:
			return
		}
	}
}

// cleanup removes expired entries. Entries with expiry zero never expire.
func (c *Client) cleanup() {
	query := "DELETE FROM cache WHERE expiry > 0 AND expiry <= ?"
	_, _ = c.db.Exec(query, time.Now().Unix())
}

// Close stops the cleanup routine and closes the database connection.
func (c *Client) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return c.db.Close()
}

// Stats returns cache statistics for diagnostics.
func (c *Client) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM cache").Scan(&count)
	if err != nil {
		return nil, err
	}
	stats["total_entries"] = count

	var expired int
	err = c.db.QueryRow("SELECT COUNT(*) FROM cache WHERE expiry > 0 AND expiry <= ?", time.Now().Unix()).Scan(&expired)
	if err != nil {
		return nil, err
	}
	stats["expired_entries"] = expired

	var pageCount, pageSize int
	err = c.db.QueryRow("PRAGMA page_count").Scan(&pageCount)
	if err == nil {
		err = c.db.QueryRow("PRAGMA page_size").Scan(&pageSize)
		if err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	stats["file_path"] = c.filePath

	return stats, nil
}
