package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered    uint64
	LoginsSucceeded    uint64
	LoginsFailed       uint64
	ProfileCacheHits   uint64
	ProfileCacheMisses uint64
	AuthRejected       uint64
	NotesCreated       uint64
	NotesUpdated       uint64
	NotesDeleted       uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersRegistered    atomic.Uint64
	loginsSucceeded    atomic.Uint64
	loginsFailed       atomic.Uint64
	profileCacheHits   atomic.Uint64
	profileCacheMisses atomic.Uint64
	authRejected       atomic.Uint64
	notesCreated       atomic.Uint64
	notesUpdated       atomic.Uint64
	notesDeleted       atomic.Uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:    m.usersRegistered.Load(),
		LoginsSucceeded:    m.loginsSucceeded.Load(),
		LoginsFailed:       m.loginsFailed.Load(),
		ProfileCacheHits:   m.profileCacheHits.Load(),
		ProfileCacheMisses: m.profileCacheMisses.Load(),
		AuthRejected:       m.authRejected.Load(),
		NotesCreated:       m.notesCreated.Load(),
		NotesUpdated:       m.notesUpdated.Load(),
		NotesDeleted:       m.notesDeleted.Load(),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	m.usersRegistered.Add(1)
}

// IncLogin increments the login counter for the given status.
func (m *InMemoryRecorder) IncLogin(status string) {
	if status == "success" {
		m.loginsSucceeded.Add(1)
		return
	}
	m.loginsFailed.Add(1)
}

// IncProfileCacheHit increments the profile cache hit counter.
func (m *InMemoryRecorder) IncProfileCacheHit() {
	m.profileCacheHits.Add(1)
}

// IncProfileCacheMiss increments the profile cache miss counter.
func (m *InMemoryRecorder) IncProfileCacheMiss() {
	m.profileCacheMisses.Add(1)
}

// IncAuthRejected increments the rejected-token counter.
func (m *InMemoryRecorder) IncAuthRejected() {
	m.authRejected.Add(1)
}

// IncNoteCreated increments note created counter.
func (m *InMemoryRecorder) IncNoteCreated() {
	m.notesCreated.Add(1)
}

// IncNoteUpdated increments note updated counter.
func (m *InMemoryRecorder) IncNoteUpdated() {
	m.notesUpdated.Add(1)
}

// IncNoteDeleted increments note deleted counter.
func (m *InMemoryRecorder) IncNoteDeleted() {
	m.notesDeleted.Add(1)
}
