package middleware

import (
	"encoding/json"
	"net/http"
)

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// writeError writes the same failure envelope the handlers use.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Success: false, Message: message})
}
