package repository

import (
	"context"

	"github.com/ganot/notekeeper/internal/domain/dialogue"
	"github.com/ganot/notekeeper/internal/domain/note"
)

// NoteRepository manages note persistence. Every operation runs as a single
// statement against the store: a failed create leaves no row and a failed
// delete leaves the row untouched.
type NoteRepository interface {
	Create(ctx context.Context, n note.New) error
	Query(ctx context.Context, keywords note.Keywords) ([]note.Note, error)
	ListSummaries(ctx context.Context) ([]note.Summary, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SessionStore persists per-chat capture dialogue state between messages.
// Get returns ErrNotFound when the chat has no dialogue in progress.
type SessionStore interface {
	Get(ctx context.Context, chatID int64) (dialogue.State, error)
	Set(ctx context.Context, chatID int64, state dialogue.State) error
	Clear(ctx context.Context, chatID int64) error
}
