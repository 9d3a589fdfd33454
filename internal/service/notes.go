package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/notekeeper/notekeeper/internal/apperr"
	"github.com/notekeeper/notekeeper/internal/metrics"
	"github.com/notekeeper/notekeeper/internal/model"
	"github.com/notekeeper/notekeeper/internal/repository"
)

const msgNoteNotFound = "Note not found"

// NoteInput defines the mutable fields of a note.
type NoteInput struct {
	Title   string
	Content string
}

// NotesService performs owner-scoped CRUD on notes.
// The owner ID always comes from the authenticated identity.
type NotesService struct {
	notes   NoteStore
	logger  *slog.Logger
	metrics metrics.Recorder
	now     Clock
}

// NotesOption configures a NotesService.
type NotesOption func(*NotesService)

// WithNotesClock overrides the time source for note timestamps.
func WithNotesClock(now Clock) NotesOption {
	return func(s *NotesService) {
		s.now = now
	}
}

// NewNotesService creates a new NotesService.
func NewNotesService(notes NoteStore, logger *slog.Logger, recorder metrics.Recorder, opts ...NotesOption) *NotesService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &NotesService{
		notes:   notes,
		logger:  logger,
		metrics: recorder,
		now:     systemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and stores a new note for ownerID.
func (s *NotesService) Create(ctx context.Context, ownerID string, input NoteInput) (*model.Note, error) {
	if ownerID == "" {
		return nil, errAuthRequired()
	}

	title, content := normalizeNote(input)
	if fields := validateNote(title, content); len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	now := s.now()
	note := &model.Note{
		ID:        ulid.Make().String(),
		Title:     title,
		Content:   content,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.notes.CreateNote(ctx, note); err != nil {
		return nil, apperr.Unexpected("Error creating note", err)
	}

	s.metrics.IncNoteCreated()
	s.logger.Info("note_created",
		slog.String("note_id", note.ID),
		slog.String("user_id", ownerID),
	)

	return note, nil
}

// List returns the notes of ownerID, most recently updated first.
func (s *NotesService) List(ctx context.Context, ownerID string) ([]*model.Note, error) {
	if ownerID == "" {
		return nil, errAuthRequired()
	}

	notes, err := s.notes.ListNotesByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Unexpected("Error fetching notes", err)
	}
	if notes == nil {
		notes = []*model.Note{}
	}

	return notes, nil
}

// Get returns a single note. A note owned by someone else is reported as not found.
func (s *NotesService) Get(ctx context.Context, ownerID, noteID string) (*model.Note, error) {
	if ownerID == "" {
		return nil, errAuthRequired()
	}

	note, err := s.notes.GetNote(ctx, ownerID, noteID)
	if err != nil {
		return nil, mapNoteError(err, "Error fetching note")
	}

	return note, nil
}

// Update replaces the title and content of an owned note and bumps last_update.
func (s *NotesService) Update(ctx context.Context, ownerID, noteID string, input NoteInput) (*model.Note, error) {
	if ownerID == "" {
		return nil, errAuthRequired()
	}

	title, content := normalizeNote(input)
	if fields := validateNote(title, content); len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	note, err := s.notes.UpdateNote(ctx, ownerID, noteID, title, content, s.now())
	if err != nil {
		return nil, mapNoteError(err, "Error updating note")
	}

	s.metrics.IncNoteUpdated()
	s.logger.Info("note_updated",
		slog.String("note_id", note.ID),
		slog.String("user_id", ownerID),
	)

	return note, nil
}

// Delete permanently removes an owned note.
func (s *NotesService) Delete(ctx context.Context, ownerID, noteID string) error {
	if ownerID == "" {
		return errAuthRequired()
	}

	if err := s.notes.DeleteNote(ctx, ownerID, noteID); err != nil {
		return mapNoteError(err, "Error deleting note")
	}

	s.metrics.IncNoteDeleted()
	s.logger.Info("note_deleted",
		slog.String("note_id", noteID),
		slog.String("user_id", ownerID),
	)

	return nil
}

func normalizeNote(input NoteInput) (string, string) {
	return strings.TrimSpace(input.Title), strings.TrimSpace(input.Content)
}

func mapNoteError(err error, message string) error {
	if errors.Is(err, repository.ErrNoteNotFound) {
		return apperr.NotFound(msgNoteNotFound)
	}
	return apperr.Unexpected(message, err)
}

func errAuthRequired() error {
	return apperr.Authentication("Authentication required")
}
