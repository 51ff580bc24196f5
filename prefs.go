package guide

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Preference keys the engine reads and writes. Unknown keys are rejected
// at the handler so the table only ever holds these.
const (
	PrefDarkMode  = "dark_mode"
	PrefActiveTab = "active_tab"
)

// PrefStore persists per-visitor preferences (theme, last active tab) in
// SQLite, keyed by the session-carried visitor id.
type PrefStore struct {
	db *sql.DB
}

// NewPrefStore opens (or creates) the SQLite database at path, ensures the
// data directory exists, and runs schema migrations.
func NewPrefStore(path string) (*PrefStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Enable WAL mode for concurrent read/write access, set a busy timeout
	// so writers wait instead of returning SQLITE_BUSY immediately, and tune
	// performance: synchronous=NORMAL is safe with WAL and avoids an fsync
	// per transaction; larger cache and mmap reduce disk I/O.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
		PRAGMA mmap_size=268435456;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &PrefStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *PrefStore) Close() error {
	return s.db.Close()
}

func (s *PrefStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS prefs (
    visitor_id TEXT NOT NULL,
    key TEXT NOT NULL,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    PRIMARY KEY (visitor_id, key)
);
`)
	return err
}

// Get returns the stored value for a visitor's key, or "" when unset.
func (s *PrefStore) Get(visitorID, key string) (string, error) {
	if visitorID == "" {
		return "", nil
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE visitor_id = ? AND key = ?`, visitorID, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set upserts one preference for a visitor.
func (s *PrefStore) Set(visitorID, key, value string) error {
	if visitorID == "" {
		return fmt.Errorf("prefs: empty visitor id")
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO prefs (visitor_id, key, value, updated_at) VALUES (?, ?, ?, ?)`,
		visitorID, key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

// DarkMode reports whether the visitor prefers the dark theme. Unset or
// unreadable preferences fall back to light.
func (s *PrefStore) DarkMode(visitorID string) bool {
	v, err := s.Get(visitorID, PrefDarkMode)
	return err == nil && v == "true"
}

// ActiveTab returns the visitor's last visited tab id, or "" when unset.
func (s *PrefStore) ActiveTab(visitorID string) string {
	v, err := s.Get(visitorID, PrefActiveTab)
	if err != nil {
		return ""
	}
	return v
}
