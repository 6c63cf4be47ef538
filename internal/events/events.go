// Package events implements the process-wide event bus (spec §4.8): a
// single emitter with a closed event-name vocabulary, a bounded ring buffer
// of recent events, and fire-and-forget handler dispatch. Grounded on
// _examples/theRebelliousNerd-codenerd/internal/transparency/event_bus.go's
// GlassBoxEventBus, simplified to the spec's narrower contract (no batching,
// no per-category filtering) and extended with the 1000-entry retained ring
// buffer the teacher's bus lacks.
package events

import (
	"sync"
	"time"

	"voidwave/internal/logging"
)

// Name is one of the closed set of event names (spec §6).
type Name string

const (
	ToolStarted   Name = "tool.started"
	ToolOutput    Name = "tool.output"
	ToolProgress  Name = "tool.progress"
	ToolCompleted Name = "tool.completed"
	ToolFailed    Name = "tool.failed"
	ToolStopAll   Name = "tool.stop_all"

	TaskStarted   Name = "task.started"
	TaskProgress  Name = "task.progress"
	TaskCompleted Name = "task.completed"

	DiscoveryHost          Name = "discovery.host"
	DiscoveryService       Name = "discovery.service"
	DiscoveryVulnerability Name = "discovery.vulnerability"

	WirelessNetwork   Name = "wireless.network"
	WirelessHandshake Name = "wireless.handshake"
	WirelessPMKID     Name = "wireless.pmkid"
	WirelessCracked   Name = "wireless.cracked"

	SessionStarted Name = "session.started"
	SessionUpdated Name = "session.updated"
	SessionEnded   Name = "session.ended"

	UIStatus       Name = "ui.status"
	UINotification Name = "ui.notification"
)

// Payload is a free-form event body. Contractual keys (spec §6) include
// "tool", "target", "exit_code", "duration", "line", "level", "step_id",
// "chain_id", but the map is otherwise unconstrained.
type Payload map[string]any

// Event is one emitted occurrence: a name plus its payload, with bus-assigned
// sequencing and timestamp.
type Event struct {
	Seq       uint64
	Name      Name
	Payload   Payload
	Timestamp time.Time
}

// Handler receives emitted events. A Handler that panics or whose caller
// wants error reporting should recover/log internally — Bus.Emit does not
// propagate handler errors, it only isolates them so one bad handler can't
// block the others.
type Handler func(Event)

const ringBufferCap = 1000

// Bus is a single process-wide event emitter with bounded retained history.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Name][]Handler

	ringMu sync.Mutex
	ring   []Event
	next   int
	filled bool
	seq    uint64
}

// NewBus constructs an empty event bus with the default 1000-entry ring.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Name][]Handler),
		ring:     make([]Event, ringBufferCap),
	}
}

// On registers a handler for the named event. Returns a token usable with Off.
func (b *Bus) On(name Name, h Handler) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
	return len(b.handlers[name]) - 1
}

// Off removes the handler previously registered at the given token index for
// name. A stale or out-of-range token is a no-op.
func (b *Bus) Off(name Name, token int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	hs := b.handlers[name]
	if token < 0 || token >= len(hs) {
		return
	}
	hs[token] = nil
}

// Emit records the event in the ring buffer, then dispatches it to every
// handler registered for name. Dispatch is synchronous and fire-and-forget:
// a handler that panics is recovered and logged, never blocking the rest.
func (b *Bus) Emit(name Name, payload Payload) {
	ev := Event{
		Name:      name,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	b.ringMu.Lock()
	b.seq++
	ev.Seq = b.seq
	b.ring[b.next] = ev
	b.next = (b.next + 1) % ringBufferCap
	if b.next == 0 {
		b.filled = true
	}
	b.ringMu.Unlock()

	b.mu.RLock()
	hs := append([]Handler(nil), b.handlers[name]...)
	b.mu.RUnlock()

	for _, h := range hs {
		if h == nil {
			continue
		}
		b.dispatch(h, ev)
	}
}

func (b *Bus) dispatch(h Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			logging.EventsWarn("event handler panicked for %s: %v", ev.Name, r)
		}
	}()
	h(ev)
}

// Recent returns up to the last `limit` retained events, oldest first. A
// limit <= 0 or >= the buffer's filled length returns everything retained.
func (b *Bus) Recent(limit int) []Event {
	b.ringMu.Lock()
	defer b.ringMu.Unlock()

	var ordered []Event
	if b.filled {
		ordered = make([]Event, 0, ringBufferCap)
		ordered = append(ordered, b.ring[b.next:]...)
		ordered = append(ordered, b.ring[:b.next]...)
	} else {
		ordered = append(ordered, b.ring[:b.next]...)
	}

	if limit <= 0 || limit >= len(ordered) {
		return ordered
	}
	return ordered[len(ordered)-limit:]
}
