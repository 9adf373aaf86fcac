package note_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ganot/notekeeper/internal/domain/note"
	"github.com/ganot/notekeeper/internal/repository/mocks"
)

func TestNoteService_Create(t *testing.T) {
	ctx := context.Background()
	n := note.New{Content: note.Text{Body: "hello"}, Keywords: note.Keywords{"x", "y"}}

	repo := &mocks.NoteRepository{}
	repo.On("Create", ctx, n).Return(nil)

	svc := note.NewService(repo, nil)
	require.NoError(t, svc.Create(ctx, n))
	repo.AssertExpectations(t)
}

func TestNoteService_CreatePropagatesError(t *testing.T) {
	ctx := context.Background()
	want := errors.New("write failed")

	repo := &mocks.NoteRepository{}
	repo.On("Create", ctx, note.New{}).Return(want)

	svc := note.NewService(repo, nil)
	err := svc.Create(ctx, note.New{})
	require.ErrorIs(t, err, want)
}

func TestNoteService_ListBuildsPager(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.NoteRepository{}
	repo.On("ListSummaries", ctx).Return([]note.Summary{
		{ID: 1, Keywords: note.Keywords{"a"}},
	}, nil)

	svc := note.NewService(repo, nil)
	pager, err := svc.List(ctx)
	require.NoError(t, err)

	chunk, ok := pager.Next()
	require.True(t, ok)
	require.Equal(t, "`1` \\- a", chunk)
	_, ok = pager.Next()
	require.False(t, ok)
}

func TestNoteService_Remove(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.NoteRepository{}
	repo.On("Delete", ctx, int64(7)).Return(true, nil)
	repo.On("Delete", ctx, int64(8)).Return(false, nil)

	svc := note.NewService(repo, nil)

	removed, err := svc.Remove(ctx, 7)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = svc.Remove(ctx, 8)
	require.NoError(t, err)
	require.False(t, removed)
}
