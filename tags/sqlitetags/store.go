// Package sqlitetags provides a SQLite-backed tags.Store.
//
// Hosts that do not persist entity state themselves (developer tools, test
// harnesses) can use it to keep texture selections between sessions.
package sqlitetags

import (
	"database/sql"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"badc0de.net/pkg/go-alttextures/tags"
)

const schema = `CREATE TABLE IF NOT EXISTS entity_tags (
	entity_id  TEXT PRIMARY KEY,
	owner      TEXT NOT NULL,
	texture_id TEXT NOT NULL,
	season     TEXT NOT NULL,
	variation  INTEGER NOT NULL
)`

// Store persists tags in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ tags.Store = (*Store)(nil)

// Open opens (creating if needed) the tag database at path. The special
// path ":memory:" opens a private in-memory database.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	// One connection: an in-memory database is private to its connection.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "create schema")
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get returns the tag of id. Read errors are logged and reported as a
// missing tag, which makes the entity keep its original look.
func (s *Store) Get(id tags.EntityID) (tags.Tag, bool) {
	var t tags.Tag
	row := s.sqlDB.QueryRow(`SELECT owner, texture_id, season, variation FROM entity_tags WHERE entity_id = ?`, string(id))
	switch err := row.Scan(&t.Owner, &t.TextureID, &t.Season, &t.Variation); {
	case err == sql.ErrNoRows:
		return tags.Tag{}, false
	case err != nil:
		glog.Errorf("reading tag of %s: %v", id, err)
		return tags.Tag{}, false
	}
	return t, true
}

// Set stores t as the tag of id, replacing any previous one.
func (s *Store) Set(id tags.EntityID, t tags.Tag) error {
	_, err := s.sqlDB.Exec(`INSERT INTO entity_tags (entity_id, owner, texture_id, season, variation)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(entity_id) DO UPDATE SET
			owner = excluded.owner,
			texture_id = excluded.texture_id,
			season = excluded.season,
			variation = excluded.variation`,
		string(id), t.Owner, t.TextureID, t.Season, t.Variation)
	return errors.Wrapf(err, "storing tag of %s", id)
}

// Delete removes the tag of id. Deleting a missing tag is not an error.
func (s *Store) Delete(id tags.EntityID) error {
	_, err := s.sqlDB.Exec(`DELETE FROM entity_tags WHERE entity_id = ?`, string(id))
	return errors.Wrapf(err, "deleting tag of %s", id)
}

// Len returns the number of tagged entities.
func (s *Store) Len() (int, error) {
	var n int
	if err := s.sqlDB.QueryRow(`SELECT COUNT(*) FROM entity_tags`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "counting tags")
	}
	return n, nil
}
