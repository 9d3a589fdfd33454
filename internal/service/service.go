// Package service provides business logic for accounts and notes.
package service

import (
	"context"
	"time"

	"github.com/notekeeper/notekeeper/internal/model"
)

// UserStore persists user records.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// NoteStore persists note records. Every lookup is scoped to an owner.
type NoteStore interface {
	CreateNote(ctx context.Context, note *model.Note) error
	ListNotesByOwner(ctx context.Context, ownerID string) ([]*model.Note, error)
	GetNote(ctx context.Context, ownerID, noteID string) (*model.Note, error)
	UpdateNote(ctx context.Context, ownerID, noteID, title, content string, updatedAt time.Time) (*model.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID string) error
}

// ProfileCache is an optional read-through cache for user profiles.
type ProfileCache interface {
	GetProfile(ctx context.Context, userID string) (*model.User, error)
	SetProfile(ctx context.Context, user *model.User) error
}

// TokenIssuer signs bearer tokens for an identity.
type TokenIssuer interface {
	Issue(identity model.Identity) (string, error)
}

// Clock returns the current time.
type Clock func() time.Time

// systemClock returns the current UTC time at the store's microsecond precision.
func systemClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
