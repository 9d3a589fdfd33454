package handler

import (
	"net/http"

	"github.com/notekeeper/notekeeper/api"
)

// OpenAPI serves the embedded OpenAPI document.
//
// GET /api/openapi.yaml
func OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(api.OpenAPI)
}
