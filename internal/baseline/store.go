// Package baseline stores findings that a project has accepted, so that
// later lint runs only report new ones.
//
// A finding is identified by a fingerprint of its rule, file path, message
// and highlight. Line numbers are deliberately left out: code moving up or
// down a file does not turn an accepted finding into a new one.
package baseline

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/leapstack-labs/msglint/pkg/lint"
)

// ErrNotOpen is returned when the store is used before Open.
var ErrNotOpen = errors.New("baseline database not opened")

// Entry is one accepted finding.
type Entry struct {
	ID          string
	Fingerprint string
	RuleID      string
	Path        string
	Message     string
	Highlight   string
	CreatedAt   time.Time
}

// Fingerprint returns the identity of a finding reported for path.
func Fingerprint(path string, d lint.Diagnostic) string {
	h := sha256.New()
	for _, part := range []string{d.RuleID, filepath.ToSlash(path), d.Message, d.Highlight} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// NewEntry builds the entry that accepts d reported for path.
func NewEntry(path string, d lint.Diagnostic) Entry {
	return Entry{
		Fingerprint: Fingerprint(path, d),
		RuleID:      d.RuleID,
		Path:        filepath.ToSlash(path),
		Message:     d.Message,
		Highlight:   d.Highlight,
	}
}

// Store is a SQLite-backed baseline.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new, unopened baseline store.
func NewStore() *Store {
	return &Store{}
}

// Open opens the database at path, creating it and its parent directory when
// missing, and applies pending migrations. Use ":memory:" for an in-memory
// database.
func (s *Store) Open(path string) error {
	dsn := ":memory:?_pragma=foreign_keys(1)"
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create baseline directory: %w", err)
			}
		}
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if err := migrateDB(db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	s.path = path
	return nil
}

// Path returns the path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Replace discards the stored baseline and stores entries in its place.
func (s *Store) Replace(ctx context.Context, entries []Entry) error {
	if s.db == nil {
		return ErrNotOpen
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM findings`); err != nil {
		return fmt.Errorf("failed to clear baseline: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO findings (id, fingerprint, rule_id, path, message, highlight, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, e := range entries {
		if e.Fingerprint == "" {
			return fmt.Errorf("baseline entry for %s has no fingerprint", e.Path)
		}
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), e.Fingerprint, e.RuleID, e.Path, e.Message, e.Highlight, now); err != nil {
			return fmt.Errorf("failed to insert baseline entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit baseline: %w", err)
	}
	return nil
}

// List returns every stored entry ordered by path, then rule.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, fingerprint, rule_id, path, message, highlight, created_at
		 FROM findings ORDER BY path, rule_id, message`)
	if err != nil {
		return nil, fmt.Errorf("failed to list baseline: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Fingerprint, &e.RuleID, &e.Path, &e.Message, &e.Highlight, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan baseline entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Counts returns the number of stored fingerprints, keyed by fingerprint.
// Each stored entry accepts one occurrence of its finding.
func (s *Store) Counts(ctx context.Context) (map[string]int, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	rows, err := s.db.QueryContext(ctx, `SELECT fingerprint, COUNT(*) FROM findings GROUP BY fingerprint`)
	if err != nil {
		return nil, fmt.Errorf("failed to count baseline entries: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var fp string
		var n int
		if err := rows.Scan(&fp, &n); err != nil {
			return nil, fmt.Errorf("failed to scan baseline count: %w", err)
		}
		counts[fp] = n
	}
	return counts, rows.Err()
}

// Contains reports whether a finding with the fingerprint is accepted.
func (s *Store) Contains(ctx context.Context, fingerprint string) (bool, error) {
	if s.db == nil {
		return false, ErrNotOpen
	}

	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM findings WHERE fingerprint = ?`, fingerprint).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to query baseline: %w", err)
	}
	return n > 0, nil
}
