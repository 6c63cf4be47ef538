package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voidwave/internal/events"
	"voidwave/internal/toolspec"
)

type echoSpec struct {
	name string
	argv []string
}

func (e echoSpec) Name() string { return e.name }
func (e echoSpec) BuildCommand(target string, options toolspec.Options) ([]string, error) {
	return append(append([]string{}, e.argv...), target), nil
}
func (e echoSpec) ParseOutput(raw string) toolspec.Output {
	return toolspec.Output{"raw": raw}
}

func TestRunSuccessCapturesOutput(t *testing.T) {
	bus := events.NewBus()
	r := New(bus, time.Second)
	r.lookPath = func(name string) (string, error) { return "/bin/echo", nil }

	result, err := r.Run(context.Background(), echoSpec{name: "echo", argv: []string{"hello"}}, "world", nil, 2*time.Second)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "hello world", result.Data["raw"])
}

func TestRunMissingBinaryReturnsError(t *testing.T) {
	bus := events.NewBus()
	r := New(bus, time.Second)
	r.lookPath = func(name string) (string, error) { return "", errors.New("not found") }

	_, err := r.Run(context.Background(), echoSpec{name: "nonexistent-tool"}, "x", nil, time.Second)
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestRunEmitsStartedAndCompletedEvents(t *testing.T) {
	bus := events.NewBus()
	var seen []events.Name
	bus.On(events.ToolStarted, func(e events.Event) { seen = append(seen, e.Name) })
	bus.On(events.ToolCompleted, func(e events.Event) { seen = append(seen, e.Name) })

	r := New(bus, time.Second)
	r.lookPath = func(name string) (string, error) { return "/bin/echo", nil }

	_, err := r.Run(context.Background(), echoSpec{name: "echo"}, "x", nil, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, []events.Name{events.ToolStarted, events.ToolCompleted}, seen)
}

func TestRunTimeoutTerminatesProcessGroup(t *testing.T) {
	bus := events.NewBus()
	r := New(bus, 50*time.Millisecond)
	r.lookPath = func(name string) (string, error) { return "/bin/sh", nil }

	spec := echoSpec{name: "sh", argv: []string{"-c", "sleep 5"}}
	start := time.Now()
	result, err := r.Run(context.Background(), spec, "", nil, 100*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestRunHonorsRequestsPerSecondPacing(t *testing.T) {
	bus := events.NewBus()
	r := New(bus, time.Second)
	r.lookPath = func(name string) (string, error) { return "/bin/echo", nil }

	spec := echoSpec{name: "echo"}
	options := toolspec.Options{"requests_per_second": 5}

	// First call consumes the single burst token; a second immediate call
	// for the same tool must wait roughly 1/5s for the bucket to refill.
	_, err := r.Run(context.Background(), spec, "x", options, 2*time.Second)
	require.NoError(t, err)

	start := time.Now()
	_, err = r.Run(context.Background(), spec, "x", options, 2*time.Second)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestRunRejectsOptionsFailingSchemaValidation(t *testing.T) {
	bus := events.NewBus()
	r := New(bus, time.Second)
	r.lookPath = func(name string) (string, error) { return "/bin/echo", nil }

	_, err := r.Run(context.Background(), toolspec.NewNmap(), "10.0.0.1", toolspec.Options{"scan_type": "not-a-preset"}, time.Second)
	assert.ErrorIs(t, err, toolspec.ErrInvalidOptions)
}
