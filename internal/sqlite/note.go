package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ganot/notekeeper/internal/domain/note"
)

// NoteRepository implements repository.NoteRepository for SQLite
type NoteRepository struct {
	db *DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create inserts one note row, letting SQLite assign the id. Content is
// encoded before any I/O, so an encoding failure leaves no row behind.
func (r *NoteRepository) Create(ctx context.Context, n note.New) error {
	data, err := note.EncodeContent(n.Content)
	if err != nil {
		return fmt.Errorf("failed to encode note content: %w", err)
	}

	keywords, err := json.Marshal([]string(n.Keywords))
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}

	query := `INSERT INTO notes (keywords, data) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, string(keywords), string(data)); err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	return nil
}

// Query returns every note whose keyword array covers each occurrence of
// each query keyword. Duplicates in the query must all be covered: a note
// tagged ["a"] does not match the query ["a", "a"]. The containment check
// runs inside a single statement over json_each.
func (r *NoteRepository) Query(ctx context.Context, keywords note.Keywords) ([]note.Note, error) {
	wanted, err := json.Marshal([]string(keywords))
	if err != nil {
		return nil, fmt.Errorf("failed to encode query keywords: %w", err)
	}

	query := `
		SELECT n.id, n.keywords, n.data
		FROM notes n
		WHERE NOT EXISTS (
			SELECT 1
			FROM json_each(?) q
			GROUP BY q.value
			HAVING COUNT(*) > (
				SELECT COUNT(*) FROM json_each(n.keywords) k WHERE k.value = q.value
			)
		)
		ORDER BY n.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, string(wanted))
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		n, err := scanNote(rows.Scan)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, nil
}

// ListSummaries returns every note's (id, keywords) pair ordered by
// ascending id. Content documents are not decoded.
func (r *NoteRepository) ListSummaries(ctx context.Context) ([]note.Summary, error) {
	query := `SELECT id, keywords FROM notes ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var items []note.Summary
	for rows.Next() {
		var (
			id  int64
			raw string
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan note summary: %w", err)
		}

		keywords, err := decodeKeywords(id, raw)
		if err != nil {
			return nil, err
		}
		items = append(items, note.Summary{ID: id, Keywords: keywords})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating summary rows: %w", err)
	}

	return items, nil
}

// Delete removes the note with the given id. It reports whether a row was
// actually deleted; a missing id is not an error.
func (r *NoteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete note: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected > 0, nil
}

func scanNote(scan func(...any) error) (note.Note, error) {
	var (
		id       int64
		keywords string
		data     string
	)
	if err := scan(&id, &keywords, &data); err != nil {
		return note.Note{}, fmt.Errorf("failed to scan note: %w", err)
	}

	tags, err := decodeKeywords(id, keywords)
	if err != nil {
		return note.Note{}, err
	}

	content, err := note.DecodeContent([]byte(data))
	if err != nil {
		return note.Note{}, fmt.Errorf("failed to decode content of note %d: %w", id, err)
	}

	return note.Note{ID: id, Content: content, Keywords: tags}, nil
}

func decodeKeywords(id int64, raw string) (note.Keywords, error) {
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("failed to decode keywords of note %d: %w", id, err)
	}
	return note.Keywords(tags), nil
}
