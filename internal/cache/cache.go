// Package cache persists the last settled dashboard result so a new
// session can draw something before its first fetch settles.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"nathanbeddoewebdev/bwdash/internal/domain"
)

const (
	resultFile = "last-result.json"

	// DefaultTTL matches the backend retention window.
	DefaultTTL = 15 * 24 * time.Hour
)

// Entry is a cached result and when it was stored.
type Entry struct {
	Result  domain.Result `json:"result"`
	SavedAt time.Time     `json:"saved_at"`
}

// Age reports how long ago the entry was stored.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.SavedAt)
}

// Cache is a file-backed store for the last settled result.
type Cache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// New returns a cache rooted at dir. A non-positive ttl disables expiry.
func New(dir string, ttl time.Duration) *Cache {
	return &Cache{dir: dir, ttl: ttl, now: time.Now}
}

// NewDefault returns a cache rooted at the OS user cache dir.
func NewDefault() *Cache {
	return New(defaultDir(), DefaultTTL)
}

// Load returns the cached result. A missing, expired or unreadable entry
// is a miss, not an error.
func (c *Cache) Load() (Entry, bool, error) {
	if c == nil || c.dir == "" {
		return Entry{}, false, nil
	}

	data, err := os.ReadFile(c.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil || entry.SavedAt.IsZero() {
		return Entry{}, false, nil
	}

	if c.ttl > 0 && entry.Age(c.now()) > c.ttl {
		_ = os.Remove(c.path())
		return Entry{}, false, nil
	}

	return entry, true, nil
}

// Save atomically replaces the cached result.
func (c *Cache) Save(result domain.Result) error {
	if c == nil || c.dir == "" {
		return nil
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}

	payload, err := json.Marshal(Entry{Result: result, SavedAt: c.now().UTC()})
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.dir, resultFile+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, c.path())
}

// Clear removes the cached result.
func (c *Cache) Clear() error {
	if c == nil || c.dir == "" {
		return nil
	}

	err := os.Remove(c.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (c *Cache) path() string {
	return filepath.Join(c.dir, resultFile)
}

func defaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(base, "bwdash")
}
