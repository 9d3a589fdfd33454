package model

import "time"

// Note is a personal note owned by exactly one user.
type Note struct {
	ID        string    `json:"note_id"`
	Title     string    `json:"note_title"`
	Content   string    `json:"note_content"`
	OwnerID   string    `json:"user_id"`
	CreatedAt time.Time `json:"created_on"`
	UpdatedAt time.Time `json:"last_update"`
}

// IsOwnedBy reports whether the note belongs to userID.
func (n *Note) IsOwnedBy(userID string) bool {
	return n.OwnerID == userID
}
