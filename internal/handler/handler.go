// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/notekeeper/notekeeper/internal/apperr"
	"github.com/notekeeper/notekeeper/internal/handler/dto"
	"github.com/notekeeper/notekeeper/internal/middleware"
)

// Handler serves the router-level fallbacks.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, dto.Envelope{Success: false, Message: "Route not found"})
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, dto.Envelope{Success: false, Message: "Method not allowed"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeSuccess writes a success envelope.
func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, dto.Envelope{Success: true, Message: message, Data: data})
}

// writeServiceError maps a service error to its HTTP status and envelope.
// Unexpected errors are logged with their cause; the client only sees the generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	appErr := apperr.As(err)

	var status int
	switch appErr.Kind {
	case apperr.KindValidation:
		writeJSON(w, http.StatusBadRequest, dto.Envelope{
			Success: false,
			Message: appErr.Message,
			Errors:  appErr.Fields,
		})
		return
	case apperr.KindConflict:
		status = http.StatusBadRequest
	case apperr.KindAuthentication:
		status = http.StatusUnauthorized
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindUnexpected:
		status = http.StatusInternalServerError
		logger.Error("internal_error",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("endpoint", r.Method+" "+r.URL.Path),
			slog.String("error", err.Error()),
		)
	default:
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, dto.Envelope{Success: false, Message: appErr.Message})
}

// decodeJSON decodes the request body into dst.
// Malformed or oversized bodies are reported as errors ready for writeServiceError.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperr.Validation([]apperr.FieldError{{Field: "body", Message: "Request body too large"}})
		}
		if errors.Is(err, io.EOF) {
			return apperr.Validation([]apperr.FieldError{{Field: "body", Message: "Request body is required"}})
		}
		return apperr.Validation([]apperr.FieldError{{Field: "body", Message: "Invalid JSON payload"}})
	}
	return nil
}
