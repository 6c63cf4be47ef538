// Package session implements the narrow, read-only operator-state contract
// (spec §6) that requirement-derived Checks evaluate: which interface and
// target are selected, and which capture/hash/handshake files exist.
// Grounded on _examples/original_source/src/voidwave/sessions/models.py's
// Session dataclass, trimmed to the six fields VOIDWAVE's core actually
// consults — full session persistence (SQLite-backed history, workflow
// state, summaries) belongs to the TUI/db collaborator this core module
// excludes (spec §1's "Out of scope: SQLite persistence").
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"voidwave/internal/events"
	"voidwave/internal/logging"
)

// MapSession is a mutable, concurrency-safe implementation of
// requirement.Session backed by plain fields, suitable both for production
// wiring from whatever collaborator tracks operator selections and for
// tests that just need a fixed snapshot.
type MapSession struct {
	mu sync.RWMutex

	id        string
	name      string
	startedAt time.Time

	selectedInterface string
	monitorInterface  string
	selectedTarget    string
	captureFile       string
	hashFile          string
	handshakeFile     string
}

// New creates a session with a fresh "sess_<uuid>" ID and, if bus is
// non-nil, emits session.started.
func New(name string, bus *events.Bus) *MapSession {
	s := &MapSession{
		id:        "sess_" + uuid.NewString(),
		name:      name,
		startedAt: time.Now(),
	}
	logging.Session("created session: %s (%s)", name, s.id)
	if bus != nil {
		bus.Emit(events.SessionStarted, events.Payload{"session_id": s.id, "name": name})
	}
	return s
}

// ID returns the session's generated identifier.
func (s *MapSession) ID() string { return s.id }

// Name returns the session's human-readable name.
func (s *MapSession) Name() string { return s.name }

// StartedAt returns when the session was created.
func (s *MapSession) StartedAt() time.Time { return s.startedAt }

// Interface satisfies requirement.Session.
func (s *MapSession) Interface() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedInterface
}

// MonitorInterface satisfies requirement.Session.
func (s *MapSession) MonitorInterface() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.monitorInterface
}

// Target satisfies requirement.Session.
func (s *MapSession) Target() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedTarget
}

// CaptureFile satisfies requirement.Session.
func (s *MapSession) CaptureFile() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.captureFile
}

// HashFile satisfies requirement.Session.
func (s *MapSession) HashFile() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hashFile
}

// HandshakeFile satisfies requirement.Session.
func (s *MapSession) HandshakeFile() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handshakeFile
}

// SetInterface records the operator's selected (non-monitor-mode) interface
// and, if bus is non-nil, emits session.updated.
func (s *MapSession) SetInterface(iface string, bus *events.Bus) {
	s.set(func() { s.selectedInterface = iface }, "interface", iface, bus)
}

// SetMonitorInterface records the interface currently in monitor mode.
func (s *MapSession) SetMonitorInterface(iface string, bus *events.Bus) {
	s.set(func() { s.monitorInterface = iface }, "monitor_interface", iface, bus)
}

// SetTarget records the operator's selected target.
func (s *MapSession) SetTarget(target string, bus *events.Bus) {
	s.set(func() { s.selectedTarget = target }, "target", target, bus)
}

// SetCaptureFile records the path of a captured traffic/handshake file.
func (s *MapSession) SetCaptureFile(path string, bus *events.Bus) {
	s.set(func() { s.captureFile = path }, "capture_file", path, bus)
}

// SetHashFile records the path of an extracted hash file.
func (s *MapSession) SetHashFile(path string, bus *events.Bus) {
	s.set(func() { s.hashFile = path }, "hash_file", path, bus)
}

// SetHandshakeFile records the path of a captured WPA handshake file.
func (s *MapSession) SetHandshakeFile(path string, bus *events.Bus) {
	s.set(func() { s.handshakeFile = path }, "handshake_file", path, bus)
}

func (s *MapSession) set(mutate func(), field, value string, bus *events.Bus) {
	s.mu.Lock()
	mutate()
	s.mu.Unlock()
	if bus != nil {
		bus.Emit(events.SessionUpdated, events.Payload{"session_id": s.id, "field": field, "value": value})
	}
}

// End emits session.ended, if bus is non-nil. It does not mutate any
// session field — the session remains readable after ending.
func (s *MapSession) End(bus *events.Bus) {
	logging.Session("ended session: %s", s.id)
	if bus != nil {
		bus.Emit(events.SessionEnded, events.Payload{"session_id": s.id, "duration": time.Since(s.startedAt).Seconds()})
	}
}
