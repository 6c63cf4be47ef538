package control

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voidwave/internal/events"
)

func TestRegisterAndCancel(t *testing.T) {
	c := New(events.NewBus())
	cancelled := false
	_, cancel := context.WithCancel(context.Background())
	c.Register("p1", "nmap", "example.com", func() { cancelled = true; cancel() })

	require.Equal(t, 1, c.RunningCount())
	ok := c.Cancel("p1")
	assert.True(t, ok)
	assert.True(t, cancelled)
	assert.Equal(t, 0, c.RunningCount())
}

func TestCancelUnknownReturnsFalse(t *testing.T) {
	c := New(events.NewBus())
	assert.False(t, c.Cancel("missing"))
}

func TestStopAllCancelsEveryProcess(t *testing.T) {
	c := New(events.NewBus())
	var calls int
	for _, id := range []string{"a", "b", "c"} {
		c.Register(id, "nmap", "", func() { calls++ })
	}

	result := c.StopAll(time.Second)
	assert.Equal(t, 3, result.Cancelled)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 0, c.RunningCount())
}

func TestUnregisterRemovesProcess(t *testing.T) {
	c := New(events.NewBus())
	c.Register("p1", "nmap", "", func() {})
	c.Unregister("p1")
	assert.Equal(t, 0, c.RunningCount())
}

func TestStopAllEmittedByBusEvent(t *testing.T) {
	bus := events.NewBus()
	c := New(bus)
	var called bool
	c.Register("p1", "nmap", "", func() { called = true })

	bus.Emit(events.ToolStopAll, events.Payload{})
	// bus dispatch is synchronous, so StopAll has already run by the time Emit returns.
	assert.True(t, called)
	assert.Equal(t, 0, c.RunningCount())
}
