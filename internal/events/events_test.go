package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitDispatchesToRegisteredHandler(t *testing.T) {
	b := NewBus()
	var got Event
	var mu sync.Mutex
	b.On(ToolStarted, func(e Event) {
		mu.Lock()
		got = e
		mu.Unlock()
	})

	b.Emit(ToolStarted, Payload{"tool": "nmap"})

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, ToolStarted, got.Name)
	assert.Equal(t, "nmap", got.Payload["tool"])
}

func TestOffRemovesHandler(t *testing.T) {
	b := NewBus()
	calls := 0
	token := b.On(ToolCompleted, func(e Event) { calls++ })
	b.Off(ToolCompleted, token)

	b.Emit(ToolCompleted, Payload{})
	assert.Equal(t, 0, calls)
}

func TestHandlerPanicDoesNotBlockOthers(t *testing.T) {
	b := NewBus()
	var secondRan bool
	b.On(ToolFailed, func(e Event) { panic("boom") })
	b.On(ToolFailed, func(e Event) { secondRan = true })

	require.NotPanics(t, func() {
		b.Emit(ToolFailed, Payload{})
	})
	assert.True(t, secondRan)
}

func TestRecentReturnsInOrderAndBounded(t *testing.T) {
	b := NewBus()
	for i := 0; i < 5; i++ {
		b.Emit(UIStatus, Payload{"i": i})
	}

	recent := b.Recent(3)
	require.Len(t, recent, 3)
	assert.Equal(t, 2, recent[0].Payload["i"])
	assert.Equal(t, 4, recent[2].Payload["i"])
}

func TestRecentWrapsAroundRingCapacity(t *testing.T) {
	b := NewBus()
	for i := 0; i < ringBufferCap+10; i++ {
		b.Emit(UIStatus, Payload{"i": i})
	}

	recent := b.Recent(0)
	assert.Len(t, recent, ringBufferCap)
	assert.Equal(t, 10, recent[0].Payload["i"])
	assert.Equal(t, ringBufferCap+9, recent[len(recent)-1].Payload["i"])
}
