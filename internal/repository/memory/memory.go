// Package memory provides in-memory user and note stores with the same
// semantics as the PostgreSQL repository. They back service and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/notekeeper/notekeeper/internal/model"
	"github.com/notekeeper/notekeeper/internal/repository"
)

// UserStore is an in-memory user store with a unique email index.
type UserStore struct {
	mu      sync.Mutex
	byID    map[string]*model.User
	byEmail map[string]string

	// SkipExistsCheck makes EmailExists always report false, so duplicates
	// are only caught by CreateUser the way a lost insert race is.
	SkipExistsCheck bool
	// Err, when set, is returned by every write and by EmailExists.
	Err error
}

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]*model.User),
		byEmail: make(map[string]string),
	}
}

// CreateUser stores a copy of user.
func (s *UserStore) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.byEmail[user.Email]; ok {
		return repository.ErrEmailExists
	}
	u := *user
	s.byID[u.ID] = &u
	s.byEmail[u.Email] = u.ID
	return nil
}

// GetUserByID returns a copy of the user with id.
func (s *UserStore) GetUserByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// GetUserByEmail returns a copy of the user with email.
func (s *UserStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *s.byID[id]
	return &cp, nil
}

// EmailExists reports whether email is taken.
func (s *UserStore) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	if s.SkipExistsCheck {
		return false, nil
	}
	_, ok := s.byEmail[email]
	return ok, nil
}

// Len returns the number of stored users.
func (s *UserStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// NoteStore is an in-memory note store. Every lookup is owner-scoped.
type NoteStore struct {
	mu    sync.Mutex
	notes map[string]*model.Note
}

// NewNoteStore creates an empty NoteStore.
func NewNoteStore() *NoteStore {
	return &NoteStore{notes: make(map[string]*model.Note)}
}

// CreateNote stores a copy of note.
func (s *NoteStore) CreateNote(_ context.Context, note *model.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := *note
	s.notes[n.ID] = &n
	return nil
}

// ListNotesByOwner returns the owner's notes, most recently updated first.
func (s *NoteStore) ListNotesByOwner(_ context.Context, ownerID string) ([]*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*model.Note{}
	for _, n := range s.notes {
		if n.IsOwnedBy(ownerID) {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// GetNote returns a copy of the note if ownerID owns it.
func (s *NoteStore) GetNote(_ context.Context, ownerID, noteID string) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[noteID]
	if !ok || !n.IsOwnedBy(ownerID) {
		return nil, repository.ErrNoteNotFound
	}
	cp := *n
	return &cp, nil
}

// UpdateNote replaces title and content of an owned note.
func (s *NoteStore) UpdateNote(_ context.Context, ownerID, noteID, title, content string, updatedAt time.Time) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[noteID]
	if !ok || !n.IsOwnedBy(ownerID) {
		return nil, repository.ErrNoteNotFound
	}
	n.Title = title
	n.Content = content
	n.UpdatedAt = updatedAt
	cp := *n
	return &cp, nil
}

// DeleteNote removes an owned note.
func (s *NoteStore) DeleteNote(_ context.Context, ownerID, noteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[noteID]
	if !ok || !n.IsOwnedBy(ownerID) {
		return repository.ErrNoteNotFound
	}
	delete(s.notes, noteID)
	return nil
}
