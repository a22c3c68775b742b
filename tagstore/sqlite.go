package tagstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Namespace is the fixed key the full tag payload is stored under.
const Namespace = "opad:play-tags"

// SQLiteRepository persists the tag mapping as one JSON payload row in a
// key-value table. The medium is an implementation detail behind the
// Repository interface.
type SQLiteRepository struct {
	db *sql.DB
}

// DefaultDBPath returns the default tag database location under the
// user's local data directory.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", "play-gallery-cli", "tags.db"), nil
}

// OpenSQLite opens or creates the tag database at the given path.
// Parent directories are created if they don't exist.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create tag db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open tag db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping tag db: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate tag db: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// migrate creates the key-value schema. Idempotent.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS tag_state (
			namespace TEXT PRIMARY KEY,
			payload TEXT NOT NULL
		)
	`)
	return err
}

// Close closes the underlying database.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Load reads the persisted mapping. A missing row yields an empty
// mapping; a corrupt payload is logged and treated as empty so that bad
// state never blocks startup.
func (r *SQLiteRepository) Load() (map[string][]string, error) {
	var payload string
	err := r.db.QueryRow(
		"SELECT payload FROM tag_state WHERE namespace = ?", Namespace,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return make(map[string][]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("select tag payload: %w", err)
	}

	var assignments map[string][]string
	if err := json.Unmarshal([]byte(payload), &assignments); err != nil {
		log.Printf("tagstore: corrupt payload under %q, starting fresh: %v", Namespace, err)
		return make(map[string][]string), nil
	}
	if assignments == nil {
		assignments = make(map[string][]string)
	}
	return assignments, nil
}

// SaveAll rewrites the single payload row with the full mapping.
func (r *SQLiteRepository) SaveAll(assignments map[string][]string) error {
	payload, err := json.Marshal(assignments)
	if err != nil {
		return fmt.Errorf("encode tag payload: %w", err)
	}
	_, err = r.db.Exec(`
		INSERT INTO tag_state (namespace, payload) VALUES (?, ?)
		ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload`,
		Namespace, string(payload))
	if err != nil {
		return fmt.Errorf("write tag payload: %w", err)
	}
	return nil
}
