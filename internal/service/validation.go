package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/notekeeper/notekeeper/internal/apperr"
)

// Validation limits.
const (
	MinNameLength     = 3
	MaxNameLength     = 50
	MinPasswordLength = 6
	MaxTitleLength    = 200
	MaxEmailLength    = 320

	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

// Field names as they appear in request bodies.
const (
	FieldName     = "user_name"
	FieldEmail    = "user_email"
	FieldPassword = "password"
	FieldTitle    = "note_title"
	FieldContent  = "note_content"
)

// emailPattern matches addresses of the form local@domain.tld with no whitespace.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// hasNUL reports whether s contains a NUL byte, which text columns reject.
func hasNUL(s string) bool {
	return strings.IndexByte(s, 0) >= 0
}

// validateEmail checks a normalized email address.
func validateEmail(email string) []apperr.FieldError {
	switch {
	case utf8.RuneCountInString(email) > MaxEmailLength:
		return []apperr.FieldError{{Field: FieldEmail, Message: "Email cannot exceed 320 characters"}}
	case hasNUL(email) || !emailPattern.MatchString(email):
		return []apperr.FieldError{{Field: FieldEmail, Message: "Please provide a valid email"}}
	}
	return nil
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateRegistration checks every registration field and returns all violations.
// name and email must already be trimmed/normalized.
func validateRegistration(name, email, password string) []apperr.FieldError {
	var fields []apperr.FieldError

	switch n := utf8.RuneCountInString(name); {
	case n < MinNameLength || n > MaxNameLength:
		fields = append(fields, apperr.FieldError{
			Field:   FieldName,
			Message: "Username must be between 3 and 50 characters",
		})
	case hasNUL(name):
		fields = append(fields, apperr.FieldError{
			Field:   FieldName,
			Message: "Username contains invalid characters",
		})
	}

	fields = append(fields, validateEmail(email)...)

	switch {
	case utf8.RuneCountInString(password) < MinPasswordLength:
		fields = append(fields, apperr.FieldError{
			Field:   FieldPassword,
			Message: "Password must be at least 6 characters long",
		})
	case len(password) > MaxPasswordBytes:
		fields = append(fields, apperr.FieldError{
			Field:   FieldPassword,
			Message: "Password cannot exceed 72 bytes",
		})
	}

	return fields
}

// validateLogin checks login fields.
// Passwords longer than any registration accepts are rejected the same way.
func validateLogin(email, password string) []apperr.FieldError {
	fields := validateEmail(email)

	switch {
	case password == "":
		fields = append(fields, apperr.FieldError{
			Field:   FieldPassword,
			Message: "Password is required",
		})
	case len(password) > MaxPasswordBytes:
		fields = append(fields, apperr.FieldError{
			Field:   FieldPassword,
			Message: "Password cannot exceed 72 bytes",
		})
	}

	return fields
}

// validateNote checks trimmed note title and content.
func validateNote(title, content string) []apperr.FieldError {
	var fields []apperr.FieldError

	switch {
	case title == "":
		fields = append(fields, apperr.FieldError{
			Field:   FieldTitle,
			Message: "Note title is required",
		})
	case utf8.RuneCountInString(title) > MaxTitleLength:
		fields = append(fields, apperr.FieldError{
			Field:   FieldTitle,
			Message: "Title cannot exceed 200 characters",
		})
	case hasNUL(title):
		fields = append(fields, apperr.FieldError{
			Field:   FieldTitle,
			Message: "Note title contains invalid characters",
		})
	}

	switch {
	case content == "":
		fields = append(fields, apperr.FieldError{
			Field:   FieldContent,
			Message: "Note content is required",
		})
	case hasNUL(content):
		fields = append(fields, apperr.FieldError{
			Field:   FieldContent,
			Message: "Note content contains invalid characters",
		})
	}

	return fields
}
