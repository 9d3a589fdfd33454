package dto

import (
	"github.com/notekeeper/notekeeper/internal/model"
	"github.com/notekeeper/notekeeper/internal/service"
)

// NoteRequest represents the request body for creating or replacing a note.
type NoteRequest struct {
	Title   string `json:"note_title"`
	Content string `json:"note_content"`
}

// ToInput converts the request to service input.
func (r NoteRequest) ToInput() service.NoteInput {
	return service.NoteInput{Title: r.Title, Content: r.Content}
}

// NoteResponse wraps a single note.
type NoteResponse struct {
	Note *model.Note `json:"note"`
}

// NoteListResponse wraps the caller's notes.
type NoteListResponse struct {
	Notes []*model.Note `json:"notes"`
	Count int           `json:"count"`
}

// ToNoteListResponse builds a list payload. A nil slice is encoded as [].
func ToNoteListResponse(notes []*model.Note) NoteListResponse {
	if notes == nil {
		notes = []*model.Note{}
	}
	return NoteListResponse{Notes: notes, Count: len(notes)}
}
