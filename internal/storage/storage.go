package storage

import (
	"database/sql"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"docwatch/internal/api"
)

// Store is a small sqlite cache of the last tag list fetched from the
// server. It lets the tag pickers show options before the background
// fetch lands, and across offline starts.
type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	dsn := sqliteDSN(dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tags (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT DEFAULT '',
	fetched_at TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

// ReplaceTags swaps the cached tag list for the given one.
func (s *Store) ReplaceTags(tags []api.Tag) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tags;`); err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, t := range tags {
		if _, err := tx.Exec(`INSERT INTO tags (id, name, category, fetched_at) VALUES (?, ?, ?, ?);`,
			t.ID, t.Name, t.Category, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// CachedTags returns the cached list ordered by name.
func (s *Store) CachedTags() ([]api.Tag, error) {
	rows, err := s.db.Query(`SELECT id, name, category FROM tags ORDER BY name;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []api.Tag
	for rows.Next() {
		var t api.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Category); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
