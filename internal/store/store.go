// Package store persists calculation records in SQLite. The table is
// append-only: records are inserted once and never updated or deleted,
// so the history doubles as an audit log.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("calculation record not found")

// Record is one stored calculation: the request profile and the
// produced result and verdict, all as raw JSON so stored history is
// not coupled to the current struct layout.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Profile   []byte    `json:"profile"`
	Result    []byte    `json:"result"`
	Verdict   []byte    `json:"verdict"`
}

// Store is a SQLite-backed calculation history.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

const schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id         TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	profile    TEXT NOT NULL,
	result     TEXT NOT NULL,
	verdict    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations(created_at DESC);
`

// New opens (or creates) the database at path. WAL mode keeps readers
// from blocking the single writer.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return NewWithDB(db)
}

// NewWithDB wraps an existing connection; used by tests to inject a
// mock driver.
func NewWithDB(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save inserts a new record and returns it with a generated id.
func (s *Store) Save(ctx context.Context, profile, result, verdict []byte) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Profile:   profile,
		Result:    result,
		Verdict:   verdict,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO calculations (id, created_at, profile, result, verdict) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt, string(rec.Profile), string(rec.Result), string(rec.Verdict))
	if err != nil {
		return nil, fmt.Errorf("failed to insert calculation record: %w", err)
	}
	return rec, nil
}

// List returns records newest first. limit <= 0 defaults to 20.
func (s *Store) List(ctx context.Context, limit, offset int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, profile, result, verdict FROM calculations ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculation records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var profile, result, verdict string
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &profile, &result, &verdict); err != nil {
			return nil, fmt.Errorf("failed to scan calculation record: %w", err)
		}
		rec.Profile = []byte(profile)
		rec.Result = []byte(result)
		rec.Verdict = []byte(verdict)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Get returns a single record by id.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rec Record
	var profile, result, verdict string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, profile, result, verdict FROM calculations WHERE id = ?`, id).
		Scan(&rec.ID, &rec.CreatedAt, &profile, &result, &verdict)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load calculation record %s: %w", id, err)
	}
	rec.Profile = []byte(profile)
	rec.Result = []byte(result)
	rec.Verdict = []byte(verdict)
	return &rec, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
