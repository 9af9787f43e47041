// Package sqlite persists the recovery draft in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"natural-event-scheduler/internal/model"
)

// defaultDraftKey is the slot used when no explicit key is chosen.
const defaultDraftKey = "current_draft"

const schema = `
CREATE TABLE IF NOT EXISTS drafts (
	key        TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// DraftStore implements repository.DraftStore on SQLite. The draft is stored
// as JSON; time.Time fields serialize as RFC 3339 with nanoseconds, so
// sub-second precision survives the round trip.
type DraftStore struct {
	db  *sql.DB
	key string
}

// Open opens (and creates if needed) the draft database at path. Use
// ":memory:" for tests.
func Open(path string) (*DraftStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open draft store %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate draft store: %w", err)
	}
	return &DraftStore{db: db, key: defaultDraftKey}, nil
}

// WithKey returns a view of the store scoped to its own draft slot, e.g. one
// slot per chat. The underlying database handle is shared.
func (s *DraftStore) WithKey(key string) *DraftStore {
	return &DraftStore{db: s.db, key: key}
}

// Close releases the underlying database handle.
func (s *DraftStore) Close() error {
	return s.db.Close()
}

// SaveDraft stores the draft, replacing any previous one.
func (s *DraftStore) SaveDraft(ctx context.Context, draft model.EventDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	query := `
		INSERT INTO drafts (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, s.key, string(payload), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

// LoadDraft returns the stored draft, or nil when there is none.
func (s *DraftStore) LoadDraft(ctx context.Context) (*model.EventDraft, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM drafts WHERE key = ?`, s.key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var draft model.EventDraft
	if err := json.Unmarshal([]byte(payload), &draft); err != nil {
		return nil, fmt.Errorf("failed to decode stored draft: %w", err)
	}
	return &draft, nil
}

// ClearDraft removes the stored draft.
func (s *DraftStore) ClearDraft(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE key = ?`, s.key); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}
