// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/notekeeper/notekeeper/internal/apperr"
)

// Envelope wraps every JSON API response.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
}
