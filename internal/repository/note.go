package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/notekeeper/notekeeper/internal/model"
)

// ErrNoteNotFound is returned when no note matches both the note ID and the owner.
var ErrNoteNotFound = errors.New("note not found")

const noteColumns = `note_id, note_title, note_content, user_id, created_on, last_update`

// CreateNote inserts a new note.
func (r *Repository) CreateNote(ctx context.Context, note *model.Note) error {
	query := `
		INSERT INTO notes (note_id, note_title, note_content, user_id, created_on, last_update)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		note.ID,
		note.Title,
		note.Content,
		note.OwnerID,
		note.CreatedAt,
		note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	return nil
}

// ListNotesByOwner returns all notes owned by ownerID, most recently updated first.
func (r *Repository) ListNotesByOwner(ctx context.Context, ownerID string) ([]*model.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE user_id = $1
		ORDER BY last_update DESC, note_id DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*model.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	return notes, nil
}

// GetNote retrieves a note by ID, scoped to its owner.
func (r *Repository) GetNote(ctx context.Context, ownerID, noteID string) (*model.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE note_id = $1 AND user_id = $2
	`

	note, err := scanNote(r.pool.QueryRow(ctx, query, noteID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// UpdateNote replaces title and content of an owned note and bumps last_update.
func (r *Repository) UpdateNote(ctx context.Context, ownerID, noteID, title, content string, updatedAt time.Time) (*model.Note, error) {
	query := `
		UPDATE notes
		SET note_title = $3, note_content = $4, last_update = $5
		WHERE note_id = $1 AND user_id = $2
		RETURNING ` + noteColumns

	note, err := scanNote(r.pool.QueryRow(ctx, query, noteID, ownerID, title, content, updatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

// DeleteNote permanently removes an owned note.
func (r *Repository) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	query := `DELETE FROM notes WHERE note_id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, noteID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func scanNote(row pgx.Row) (*model.Note, error) {
	var note model.Note
	var created, updated time.Time
	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.OwnerID,
		&created,
		&updated,
	)
	if err != nil {
		return nil, err
	}
	note.CreatedAt = created.UTC()
	note.UpdatedAt = updated.UTC()
	return &note, nil
}
