package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncLogin is a no-op.
func (n *NoopRecorder) IncLogin(status string) {}

// IncProfileCacheHit is a no-op.
func (n *NoopRecorder) IncProfileCacheHit() {}

// IncProfileCacheMiss is a no-op.
func (n *NoopRecorder) IncProfileCacheMiss() {}

// IncAuthRejected is a no-op.
func (n *NoopRecorder) IncAuthRejected() {}

// IncNoteCreated is a no-op.
func (n *NoopRecorder) IncNoteCreated() {}

// IncNoteUpdated is a no-op.
func (n *NoopRecorder) IncNoteUpdated() {}

// IncNoteDeleted is a no-op.
func (n *NoopRecorder) IncNoteDeleted() {}
