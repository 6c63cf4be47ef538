package chainexec

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voidwave/internal/chain"
	"voidwave/internal/events"
	"voidwave/internal/runner"
	"voidwave/internal/toolspec"
)

type fakeSpec struct{ name string }

func (f fakeSpec) Name() string                                             { return f.name }
func (f fakeSpec) BuildCommand(string, toolspec.Options) ([]string, error)  { return nil, nil }
func (f fakeSpec) ParseOutput(raw string) toolspec.Output                   { return toolspec.Output{"raw": raw} }

type fakeRunner struct {
	results map[string]runner.Result
	errs    map[string]error
	calls   map[string]int
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{results: map[string]runner.Result{}, errs: map[string]error{}, calls: map[string]int{}}
}

func (f *fakeRunner) Run(ctx context.Context, spec toolspec.Spec, target string, options toolspec.Options, timeout time.Duration) (runner.Result, error) {
	f.calls[spec.Name()]++
	if err, ok := f.errs[spec.Name()]; ok {
		return runner.Result{}, err
	}
	return f.results[spec.Name()], nil
}

func registryWith(names ...string) *toolspec.Registry {
	r := toolspec.NewRegistry()
	for _, n := range names {
		r.MustRegister(fakeSpec{name: n})
	}
	return r
}

func TestExecuteRunsLinearChain(t *testing.T) {
	tools := registryWith("nmap", "ffuf")
	run := newFakeRunner()
	run.results["nmap"] = runner.Result{Success: true, Data: toolspec.Output{"hosts": []any{"10.0.0.1"}}}
	run.results["ffuf"] = runner.Result{Success: true, Data: toolspec.Output{"found": true}}

	exec := New(tools, run, events.NewBus())
	def := chain.Definition{
		ID: "recon",
		Steps: []chain.Step{
			{ID: "a", Tool: "nmap", TargetStatic: "example.com"},
			{ID: "b", Tool: "ffuf", TargetStatic: "example.com", DependsOn: []string{"a"}},
		},
	}

	result, err := exec.Execute(context.Background(), def, "")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, chain.StepCompleted, result.Steps["a"].Status)
	assert.Equal(t, chain.StepCompleted, result.Steps["b"].Status)
	assert.Equal(t, 1, run.calls["nmap"])
	assert.Equal(t, 1, run.calls["ffuf"])
}

func TestExecuteStopsOnFailureWithOnErrorStop(t *testing.T) {
	tools := registryWith("nmap", "ffuf")
	run := newFakeRunner()
	run.results["nmap"] = runner.Result{Success: false, Errors: []string{"boom"}}

	exec := New(tools, run, events.NewBus())
	def := chain.Definition{
		ID: "recon",
		Steps: []chain.Step{
			{ID: "a", Tool: "nmap", TargetStatic: "x", OnError: chain.OnErrorStop},
			{ID: "b", Tool: "ffuf", TargetStatic: "x", DependsOn: []string{"a"}},
		},
	}

	result, err := exec.Execute(context.Background(), def, "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, chain.StepFailed, result.Steps["a"].Status)
	_, ranB := result.Steps["b"]
	assert.False(t, ranB)
	assert.Equal(t, 0, run.calls["ffuf"])
}

func TestExecuteUsesFallbackToolOnExhaustion(t *testing.T) {
	tools := registryWith("nmap", "masscan")
	run := newFakeRunner()
	run.results["nmap"] = runner.Result{Success: false, Errors: []string{"nmap down"}}
	run.results["masscan"] = runner.Result{Success: true, Data: toolspec.Output{"ok": true}}

	exec := New(tools, run, events.NewBus())
	def := chain.Definition{
		ID: "scan",
		Steps: []chain.Step{
			{ID: "a", Tool: "nmap", TargetStatic: "x", OnError: chain.OnErrorFallback, FallbackTool: "masscan"},
		},
	}

	result, err := exec.Execute(context.Background(), def, "")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, chain.StepCompleted, result.Steps["a"].Status)
	assert.Equal(t, "masscan", result.Steps["a"].Tool)
}

func TestExecuteSkipsStepWhenConditionNotMet(t *testing.T) {
	tools := registryWith("nmap", "ffuf")
	run := newFakeRunner()
	run.results["nmap"] = runner.Result{Success: true, Data: toolspec.Output{"hosts": []any{}}}

	exec := New(tools, run, events.NewBus())
	def := chain.Definition{
		ID: "recon",
		Steps: []chain.Step{
			{ID: "a", Tool: "nmap", TargetStatic: "x"},
			{
				ID: "b", Tool: "ffuf", TargetStatic: "x", DependsOn: []string{"a"},
				Condition: &chain.Condition{SourceStep: "a", Check: chain.CheckCountGT, Path: "hosts", Value: 0},
			},
		},
	}

	result, err := exec.Execute(context.Background(), def, "")
	require.NoError(t, err)
	assert.Equal(t, chain.StepSkipped, result.Steps["b"].Status)
	assert.Equal(t, 0, run.calls["ffuf"])
}

func TestExecuteResolvesTargetBindingAndOptionBinding(t *testing.T) {
	tools := registryWith("nmap", "ffuf")
	run := newFakeRunner()
	run.results["nmap"] = runner.Result{Success: true, Data: toolspec.Output{"hosts": []any{"10.0.0.5"}}}
	run.results["ffuf"] = runner.Result{Success: true, Data: toolspec.Output{}}

	exec := New(tools, run, events.NewBus())
	def := chain.Definition{
		ID: "recon",
		Steps: []chain.Step{
			{ID: "a", Tool: "nmap", TargetStatic: "x"},
			{
				ID: "b", Tool: "ffuf", DependsOn: []string{"a"},
				TargetBinding: &chain.DataBinding{SourceStep: "a", SourcePath: "hosts[0]"},
			},
		},
	}

	result, err := exec.Execute(context.Background(), def, "")
	require.NoError(t, err)
	assert.Equal(t, chain.StepCompleted, result.Steps["b"].Status)
}

func TestExecuteRetriesBeforeFailing(t *testing.T) {
	tools := registryWith("nmap")
	run := newFakeRunner()
	run.results["nmap"] = runner.Result{Success: false, Errors: []string{"flaky"}}

	exec := New(tools, run, events.NewBus())
	def := chain.Definition{
		ID: "recon",
		Steps: []chain.Step{
			{ID: "a", Tool: "nmap", TargetStatic: "x", RetryCount: 2, RetryDelay: time.Millisecond},
		},
	}

	result, err := exec.Execute(context.Background(), def, "")
	require.NoError(t, err)
	assert.Equal(t, chain.StepFailed, result.Steps["a"].Status)
	assert.Equal(t, 3, run.calls["nmap"])
}

func TestBuildExecutionOrderGroupsParallelPeersIntoReadyWave(t *testing.T) {
	// b has no dependency of its own, so it's ready in the first wave; its
	// parallel_with peer c is pulled into that same wave regardless of c's
	// own (unresolved) dependency on a — mirrors
	// ChainExecutor._build_execution_order's peer-grouping behavior exactly.
	exec := New(registryWith(), newFakeRunner(), events.NewBus())
	steps := []chain.Step{
		{ID: "a"},
		{ID: "b", ParallelWith: []string{"c"}},
		{ID: "c", ParallelWith: []string{"b"}, DependsOn: []string{"a"}},
	}
	order := exec.buildExecutionOrder(steps)
	require.Len(t, order, 1)
	assert.Len(t, order[0], 3)
}

func TestBuildExecutionOrderRespectsLinearDependencies(t *testing.T) {
	exec := New(registryWith(), newFakeRunner(), events.NewBus())
	steps := []chain.Step{
		{ID: "a"},
		{ID: "b", DependsOn: []string{"a"}},
		{ID: "c", DependsOn: []string{"b"}},
	}
	order := exec.buildExecutionOrder(steps)
	require.Len(t, order, 3)
	assert.Equal(t, "a", order[0][0].ID)
	assert.Equal(t, "b", order[1][0].ID)
	assert.Equal(t, "c", order[2][0].ID)
}
