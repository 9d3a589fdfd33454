// Package model defines domain entities for the application.
package model

import "time"

// User is a registered account.
type User struct {
	ID           string    `json:"user_id"`
	Name         string    `json:"user_name"`
	Email        string    `json:"user_email"`
	PasswordHash string    `json:"-"` // Never serialize
	CreatedAt    time.Time `json:"created_on"`
	UpdatedAt    time.Time `json:"last_update"`
}

// PublicUser is the outward-facing projection of a User.
type PublicUser struct {
	ID        string     `json:"user_id"`
	Name      string     `json:"user_name"`
	Email     string     `json:"user_email"`
	CreatedAt time.Time  `json:"created_on"`
	UpdatedAt *time.Time `json:"last_update,omitempty"`
}

// ToPublic returns the projection used by register and login responses.
func (u *User) ToPublic() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// ToProfile returns the projection used by the profile endpoint.
// It additionally carries the last-update timestamp.
func (u *User) ToProfile() PublicUser {
	p := u.ToPublic()
	updated := u.UpdatedAt
	p.UpdatedAt = &updated
	return p
}

// Identity is the caller identity carried by a bearer token.
type Identity struct {
	UserID string
	Email  string
}
