package mocks

import (
	"context"

	"github.com/ganot/notekeeper/internal/domain/dialogue"
	"github.com/ganot/notekeeper/internal/domain/note"
	"github.com/stretchr/testify/mock"
)

// NoteRepository is a mock for repository.NoteRepository.
type NoteRepository struct {
	mock.Mock
}

func (m *NoteRepository) Create(ctx context.Context, n note.New) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NoteRepository) Query(ctx context.Context, keywords note.Keywords) ([]note.Note, error) {
	args := m.Called(ctx, keywords)
	if notes, ok := args.Get(0).([]note.Note); ok {
		return notes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NoteRepository) ListSummaries(ctx context.Context) ([]note.Summary, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]note.Summary); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NoteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// SessionStore is a mock for repository.SessionStore.
type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Get(ctx context.Context, chatID int64) (dialogue.State, error) {
	args := m.Called(ctx, chatID)
	if state, ok := args.Get(0).(dialogue.State); ok {
		return state, args.Error(1)
	}
	return dialogue.State{}, args.Error(1)
}

func (m *SessionStore) Set(ctx context.Context, chatID int64, state dialogue.State) error {
	args := m.Called(ctx, chatID, state)
	return args.Error(0)
}

func (m *SessionStore) Clear(ctx context.Context, chatID int64) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}
