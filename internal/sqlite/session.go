package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ganot/notekeeper/internal/domain/dialogue"
	"github.com/ganot/notekeeper/internal/repository"
)

// SessionStore implements repository.SessionStore for SQLite
type SessionStore struct {
	db *DB
}

// NewSessionStore creates a new SessionStore
func NewSessionStore(db *DB) *SessionStore {
	return &SessionStore{db: db}
}

// Get loads the dialogue state for a chat. Returns repository.ErrNotFound
// when the chat has no dialogue in progress.
func (s *SessionStore) Get(ctx context.Context, chatID int64) (dialogue.State, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM sessions WHERE chat_id = ?`, chatID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return dialogue.State{}, repository.ErrNotFound
	}
	if err != nil {
		return dialogue.State{}, fmt.Errorf("failed to get session: %w", err)
	}

	var state dialogue.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return dialogue.State{}, fmt.Errorf("failed to decode session state: %w", err)
	}

	return state, nil
}

// Set stores the dialogue state for a chat, replacing any existing state.
func (s *SessionStore) Set(ctx context.Context, chatID int64, state dialogue.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}

	query := `
		INSERT INTO sessions (chat_id, state, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(chat_id) DO UPDATE SET
			state = excluded.state,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.ExecContext(ctx, query, chatID, string(raw)); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

// Clear removes the dialogue state for a chat. Clearing an absent session
// is a no-op.
func (s *SessionStore) Clear(ctx context.Context, chatID int64) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE chat_id = ?`, chatID,
	); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
