package dto

import (
	"github.com/notekeeper/notekeeper/internal/model"
	"github.com/notekeeper/notekeeper/internal/service"
)

// RegisterRequest represents the request body for registering a user.
type RegisterRequest struct {
	Name     string `json:"user_name"`
	Email    string `json:"user_email"`
	Password string `json:"password"`
}

// ToInput converts the request to service input.
func (r RegisterRequest) ToInput() service.RegisterInput {
	return service.RegisterInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"user_email"`
	Password string `json:"password"`
}

// ToInput converts the request to service input.
func (r LoginRequest) ToInput() service.LoginInput {
	return service.LoginInput{Email: r.Email, Password: r.Password}
}

// ProfileResponse is the data payload of the profile endpoint.
type ProfileResponse struct {
	User *model.PublicUser `json:"user"`
}
