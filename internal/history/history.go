// Package history persists launch activity so the menu can offer a "recent"
// category across sessions.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS launches (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	launched_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_launches_name ON launches(name);
`

// Store records launches in a SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates or opens the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare history schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RecordLaunch appends one launch of the named entry.
func (s *Store) RecordLaunch(name string) error {
	_, err := s.db.Exec(
		"INSERT INTO launches (name, launched_at) VALUES (?, ?)",
		name, s.now().UTC(),
	)
	return err
}

// Recent returns the most recently launched entry names, newest first, each
// name at most once.
func (s *Store) Recent(limit int) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT name FROM launches GROUP BY name ORDER BY MAX(launched_at) DESC, name LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
