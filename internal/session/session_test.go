package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voidwave/internal/events"
	"voidwave/internal/requirement"
)

func TestNewEmitsSessionStarted(t *testing.T) {
	bus := events.NewBus()
	var seen []events.Name
	bus.On(events.SessionStarted, func(e events.Event) { seen = append(seen, e.Name) })

	s := New("engagement-1", bus)
	require.NotEmpty(t, s.ID())
	assert.Equal(t, []events.Name{events.SessionStarted}, seen)
}

func TestSettersUpdateFieldsAndEmit(t *testing.T) {
	bus := events.NewBus()
	var updates []string
	bus.On(events.SessionUpdated, func(e events.Event) { updates = append(updates, e.Payload["field"].(string)) })

	s := New("engagement-1", bus)
	s.SetInterface("wlan0", bus)
	s.SetMonitorInterface("wlan0mon", bus)
	s.SetTarget("10.0.0.5", bus)
	s.SetCaptureFile("/tmp/cap.pcap", bus)
	s.SetHashFile("/tmp/hash.txt", bus)
	s.SetHandshakeFile("/tmp/handshake.cap", bus)

	assert.Equal(t, "wlan0", s.Interface())
	assert.Equal(t, "wlan0mon", s.MonitorInterface())
	assert.Equal(t, "10.0.0.5", s.Target())
	assert.Equal(t, "/tmp/cap.pcap", s.CaptureFile())
	assert.Equal(t, "/tmp/hash.txt", s.HashFile())
	assert.Equal(t, "/tmp/handshake.cap", s.HandshakeFile())
	assert.Len(t, updates, 6)
}

func TestMapSessionSatisfiesRequirementSession(t *testing.T) {
	var _ requirement.Session = New("x", nil)
}

func TestEndEmitsSessionEnded(t *testing.T) {
	bus := events.NewBus()
	var seen bool
	bus.On(events.SessionEnded, func(events.Event) { seen = true })

	s := New("engagement-1", bus)
	s.End(bus)
	assert.True(t, seen)
}
