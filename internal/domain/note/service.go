package note

import (
	"context"
	"fmt"
	"log/slog"
)

// Repository persists notes.
type Repository interface {
	Create(ctx context.Context, n New) error
	Query(ctx context.Context, keywords Keywords) ([]Note, error)
	ListSummaries(ctx context.Context) ([]Summary, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service handles note operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new note service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create persists a captured note. The store assigns the id.
func (s *Service) Create(ctx context.Context, n New) error {
	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("creating note: %w", err)
	}
	return nil
}

// Search returns every note whose keywords cover the given ones.
func (s *Service) Search(ctx context.Context, keywords Keywords) ([]Note, error) {
	notes, err := s.repo.Query(ctx, keywords)
	if err != nil {
		return nil, fmt.Errorf("searching notes: %w", err)
	}
	return notes, nil
}

// List returns a pager over all notes ordered by ascending id.
func (s *Service) List(ctx context.Context) (*Pager, error) {
	items, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return NewPager(items), nil
}

// Remove deletes a note by id. It reports whether a note was actually
// deleted; removing an absent id is not an error.
func (s *Service) Remove(ctx context.Context, id int64) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("removing note: %w", err)
	}
	return removed, nil
}
