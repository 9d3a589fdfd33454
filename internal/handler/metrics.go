package handler

import (
	"fmt"
	"net/http"

	"github.com/notekeeper/notekeeper/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "notekeeper_users_registered_total %d\n", snap.UsersRegistered)
	writeMetric(w, "notekeeper_logins_total{status=\"success\"} %d\n", snap.LoginsSucceeded)
	writeMetric(w, "notekeeper_logins_total{status=\"failed\"} %d\n", snap.LoginsFailed)
	writeMetric(w, "notekeeper_auth_rejected_total %d\n", snap.AuthRejected)

	writeMetric(w, "notekeeper_profile_cache_hits_total %d\n", snap.ProfileCacheHits)
	writeMetric(w, "notekeeper_profile_cache_misses_total %d\n", snap.ProfileCacheMisses)

	writeMetric(w, "notekeeper_notes_created_total %d\n", snap.NotesCreated)
	writeMetric(w, "notekeeper_notes_updated_total %d\n", snap.NotesUpdated)
	writeMetric(w, "notekeeper_notes_deleted_total %d\n", snap.NotesDeleted)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
