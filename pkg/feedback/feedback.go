// Package feedback records the star ratings and comments the app's
// feedback screen collects.
package feedback

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidRating rejects ratings outside the five-star scale.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Entry is one submitted rating.
type Entry struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// New validates and builds an entry ready to store.
func New(rating int, comment string) (Entry, error) {
	if rating < 1 || rating > 5 {
		return Entry{}, ErrInvalidRating
	}
	return Entry{
		ID:        uuid.NewString(),
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Store persists feedback entries.
type Store interface {
	Save(ctx context.Context, e Entry) error
	List(ctx context.Context) ([]Entry, error)
}

// MemoryStore is an in-memory Store for tests and single-process use.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return nil
}

// List implements Store.
func (s *MemoryStore) List(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

const feedbackSchema = `
CREATE TABLE IF NOT EXISTS feedback (
	id          TEXT PRIMARY KEY,
	rating      INTEGER NOT NULL,
	comment     TEXT,
	created_at  TIMESTAMP NOT NULL
);
`

// SQLiteStore persists feedback in a local SQLite database. The handle may
// be shared with the chat store.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore prepares the schema on the given database handle.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if _, err := db.Exec(feedbackSchema); err != nil {
		return nil, fmt.Errorf("failed to create feedback schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feedback (id, rating, comment, created_at) VALUES (?, ?, ?, ?)`,
		e.ID, e.Rating, e.Comment, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

// List implements Store.
func (s *SQLiteStore) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, rating, comment, created_at FROM feedback ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Rating, &e.Comment, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback rows: %w", err)
	}
	return out, nil
}
