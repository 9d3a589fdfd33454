package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeeper/notekeeper/internal/apperr"
	"github.com/notekeeper/notekeeper/internal/metrics"
	"github.com/notekeeper/notekeeper/internal/repository/memory"
)

func newNotesFixture(t *testing.T) (*NotesService, *stepClock, *metrics.InMemoryRecorder) {
	t.Helper()
	clock := newStepClock()
	recorder := metrics.NewInMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewNotesService(memory.NewNoteStore(), logger, recorder, WithNotesClock(clock.Now)), clock, recorder
}

func TestNotesService_CreateAndGet(t *testing.T) {
	t.Parallel()

	svc, _, recorder := newNotesFixture(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, "owner-1", NoteInput{Title: "  Groceries ", Content: " milk, eggs "})
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "Groceries", note.Title)
	assert.Equal(t, "milk, eggs", note.Content)
	assert.Equal(t, "owner-1", note.OwnerID)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)

	got, err := svc.Get(ctx, "owner-1", note.ID)
	require.NoError(t, err)
	assert.Equal(t, note, got)
	assert.Equal(t, uint64(1), recorder.Snapshot().NotesCreated)
}

func TestNotesService_CreateValidation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newNotesFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "owner-1", NoteInput{Title: "   ", Content: ""})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{FieldTitle, FieldContent}, fieldNames(t, err))

	_, err = svc.Create(ctx, "owner-1", NoteInput{Title: strings.Repeat("t", MaxTitleLength+1), Content: "body"})
	require.Error(t, err)
	assert.Equal(t, []string{FieldTitle}, fieldNames(t, err))

	notes, err := svc.List(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNotesService_TitleAtLimit(t *testing.T) {
	t.Parallel()

	svc, _, _ := newNotesFixture(t)

	_, err := svc.Create(context.Background(), "owner-1", NoteInput{Title: strings.Repeat("é", MaxTitleLength), Content: "body"})
	assert.NoError(t, err)
}

func TestNotesService_ListOrdering(t *testing.T) {
	t.Parallel()

	svc, _, _ := newNotesFixture(t)
	ctx := context.Background()

	y, err := svc.Create(ctx, "owner-1", NoteInput{Title: "Y", Content: "y"})
	require.NoError(t, err)
	x, err := svc.Create(ctx, "owner-1", NoteInput{Title: "X", Content: "x"})
	require.NoError(t, err)

	notes, err := svc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, x.ID, notes[0].ID)
	assert.Equal(t, y.ID, notes[1].ID)

	updated, err := svc.Update(ctx, "owner-1", y.ID, NoteInput{Title: "Y2", Content: "y2"})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	notes, err = svc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, y.ID, notes[0].ID)
	assert.Equal(t, "Y2", notes[0].Title)
	assert.Equal(t, x.ID, notes[1].ID)
}

func TestNotesService_ListEmpty(t *testing.T) {
	t.Parallel()

	svc, _, _ := newNotesFixture(t)

	notes, err := svc.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNotesService_OwnerScoping(t *testing.T) {
	t.Parallel()

	svc, _, _ := newNotesFixture(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, "owner-a", NoteInput{Title: "private", Content: "a's note"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "owner-b", note.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Update(ctx, "owner-b", note.ID, NoteInput{Title: "hijack", Content: "b"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	err = svc.Delete(ctx, "owner-b", note.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	notes, err := svc.List(ctx, "owner-b")
	require.NoError(t, err)
	assert.Empty(t, notes)

	got, err := svc.Get(ctx, "owner-a", note.ID)
	require.NoError(t, err)
	assert.Equal(t, "private", got.Title)
}

func TestNotesService_UpdateValidatesFirst(t *testing.T) {
	t.Parallel()

	svc, _, _ := newNotesFixture(t)

	_, err := svc.Update(context.Background(), "owner-1", "missing", NoteInput{Title: "", Content: "x"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Update(context.Background(), "owner-1", "missing", NoteInput{Title: "t", Content: "x"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestNotesService_Delete(t *testing.T) {
	t.Parallel()

	svc, _, recorder := newNotesFixture(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, "owner-1", NoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "owner-1", note.ID))

	_, err = svc.Get(ctx, "owner-1", note.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	err = svc.Delete(ctx, "owner-1", note.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, uint64(1), recorder.Snapshot().NotesDeleted)
}

func TestNotesService_RequiresOwner(t *testing.T) {
	t.Parallel()

	svc, _, _ := newNotesFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", NoteInput{Title: "t", Content: "c"})
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
	_, err = svc.List(ctx, "")
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
	err = svc.Delete(ctx, "", "id")
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
}
