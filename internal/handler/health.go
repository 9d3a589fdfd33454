package handler

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker defines an interface for checking service health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	db    HealthChecker
	cache HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
// Pass nil for cache when the profile cache is disabled.
func NewHealthHandler(db, cache HealthChecker) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cache,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// APIHealthResponse is the body of GET /api/health.
type APIHealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// APIHealth reports that the server is up. Clients poll it before logging in.
//
// GET /api/health
func (h *HealthHandler) APIHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIHealthResponse{Status: "OK", Message: "Server is running"})
}

// Healthz is a liveness probe endpoint.
// It returns 200 if the server is running.
// No dependency checks - this is for Kubernetes liveness probes.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status: "ok",
	}
	writeJSON(w, http.StatusOK, response)
}

// Readyz is a readiness probe endpoint.
// It checks all dependencies and returns 200 only if all are healthy.
// For Kubernetes readiness probes - removes pod from LB if failing.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)
	healthy := true

	for name, dep := range map[string]HealthChecker{"postgres": h.db, "redis": h.cache} {
		checks[name] = probe(ctx, dep)
		if checks[name] != "ok" && checks[name] != "not configured" {
			healthy = false
		}
	}

	status := "ok"
	statusCode := http.StatusOK
	if !healthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, HealthResponse{
		Status: status,
		Checks: checks,
	})
}

// probe pings a dependency and describes the result.
func probe(ctx context.Context, dep HealthChecker) string {
	if dep == nil {
		return "not configured"
	}
	if err := dep.Ping(ctx); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}
