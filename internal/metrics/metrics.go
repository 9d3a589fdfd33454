// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Account metrics
	IncUserRegistered()
	IncLogin(status string) // status: "success" or "failed"
	IncProfileCacheHit()
	IncProfileCacheMiss()

	// Auth gate
	IncAuthRejected()

	// Note management metrics
	IncNoteCreated()
	IncNoteUpdated()
	IncNoteDeleted()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
