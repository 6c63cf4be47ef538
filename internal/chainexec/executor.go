// Package chainexec implements the chain/DAG executor (spec §4.7): it
// topologically orders a chain.Definition's steps into parallel-eligible
// groups, resolves each step's target and options (including cross-step data
// bindings and named transforms), runs the step's tool through a runner,
// retries with exponential backoff, falls back to an alternate tool on
// exhaustion, and aggregates per-step results into a chain.Result. Grounded
// on _examples/original_source/src/voidwave/chaining/executor.py's
// ChainExecutor.
package chainexec

import (
	"context"
	"fmt"
	"sync"
	"time"

	"voidwave/internal/chain"
	"voidwave/internal/events"
	"voidwave/internal/logging"
	"voidwave/internal/pathresolve"
	"voidwave/internal/runner"
	"voidwave/internal/toolspec"
	"voidwave/internal/transform"
	"voidwave/internal/verrors"
)

// Runner is the subset of runner.Runner the executor depends on, narrowed
// for testability.
type Runner interface {
	Run(ctx context.Context, spec toolspec.Spec, target string, options toolspec.Options, timeout time.Duration) (runner.Result, error)
}

// Executor runs chain definitions against a tool registry and runner.
type Executor struct {
	Tools  *toolspec.Registry
	Runner Runner
	Bus    *events.Bus

	mu          sync.Mutex
	stepResults map[string]chain.StepResult
	cancelled   bool
}

// New builds an Executor wired to tools, runner and bus.
func New(tools *toolspec.Registry, run Runner, bus *events.Bus) *Executor {
	return &Executor{Tools: tools, Runner: run, Bus: bus, stepResults: make(map[string]chain.StepResult)}
}

func (e *Executor) emit(name events.Name, payload events.Payload) {
	if e.Bus == nil {
		return
	}
	e.Bus.Emit(name, payload)
}

// Execute runs every step of def in dependency order, optionally overriding
// the chain-level target. It stops as soon as a step with OnErrorStop fails.
func (e *Executor) Execute(ctx context.Context, def chain.Definition, target string) (chain.Result, error) {
	result := chain.Result{
		ChainID:   def.ID,
		Success:   true,
		Steps:     make(map[string]chain.StepResult),
		StartedAt: time.Now(),
	}

	logging.Chain("starting chain: %s (%s)", def.Name, def.ID)
	e.emit(events.TaskStarted, events.Payload{"task_type": "chain", "chain_id": def.ID, "chain_name": def.Name})

	e.mu.Lock()
	e.stepResults = make(map[string]chain.StepResult)
	e.cancelled = false
	e.mu.Unlock()

	groups := e.buildExecutionOrder(def.Steps)

groupLoop:
	for _, group := range groups {
		if e.isCancelled() {
			result.Success = false
			result.Errors = append(result.Errors, "Chain cancelled")
			break
		}

		groupResults := e.executeGroup(ctx, group, def, target)

		for _, step := range group {
			stepResult, ok := groupResults[step.ID]
			if !ok {
				continue
			}
			e.mu.Lock()
			e.stepResults[step.ID] = stepResult
			e.mu.Unlock()
			result.Steps[step.ID] = stepResult

			if stepResult.Status == chain.StepFailed && step.OnError == chain.OnErrorStop {
				result.Success = false
				result.Errors = append(result.Errors, stepResult.Errors...)
				result.EndedAt = time.Now()
				result.TotalDuration = result.EndedAt.Sub(result.StartedAt)
				e.emit(events.TaskCompleted, events.Payload{
					"task_type": "chain", "chain_id": def.ID, "success": false, "error": stepResult.Errors,
				})
				break groupLoop
			}
		}
	}

	if result.EndedAt.IsZero() {
		result.FinalOutput = e.aggregateOutputs(def)
		result.EndedAt = time.Now()
		result.TotalDuration = result.EndedAt.Sub(result.StartedAt)
		e.emit(events.TaskCompleted, events.Payload{
			"task_type": "chain", "chain_id": def.ID, "success": result.Success, "duration": result.TotalDuration.Seconds(),
		})
	}

	logging.Chain("chain completed: %s - success=%v (%s)", def.Name, result.Success, result.TotalDuration)
	return result, nil
}

// Cancel marks the executor cancelled; the running group finishes but no
// further groups start.
func (e *Executor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelled = true
}

func (e *Executor) isCancelled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cancelled
}

// executeGroup runs a single step directly, or every step in the group
// concurrently when there's more than one.
func (e *Executor) executeGroup(ctx context.Context, group []chain.Step, def chain.Definition, target string) map[string]chain.StepResult {
	if len(group) == 1 {
		step := group[0]
		return map[string]chain.StepResult{step.ID: e.executeStep(ctx, step, def, target)}
	}

	results := make(map[string]chain.StepResult, len(group))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, step := range group {
		step := step
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := e.executeStep(ctx, step, def, target)
			mu.Lock()
			results[step.ID] = r
			mu.Unlock()
		}()
	}
	wg.Wait()
	return results
}

// executeStep runs one step to completion: condition check, target/option
// resolution, tool lookup, retry-with-backoff, and fallback-tool-on-exhaustion.
func (e *Executor) executeStep(ctx context.Context, step chain.Step, def chain.Definition, chainTarget string) chain.StepResult {
	result := chain.StepResult{
		StepID:    step.ID,
		Tool:      step.Tool,
		Status:    chain.StepRunning,
		StartedAt: time.Now(),
	}

	logging.ChainDebug("executing step: %s (%s)", step.ID, step.Tool)

	if step.Condition != nil && !e.evaluateCondition(*step.Condition) {
		result.Status = chain.StepSkipped
		result.EndedAt = time.Now()
		logging.ChainDebug("step skipped (condition not met): %s", step.ID)
		return result
	}

	target := e.resolveTarget(step, chainTarget)
	if target == "" {
		result.Status = chain.StepFailed
		result.Errors = append(result.Errors, verrors.New(verrors.KindBindingResolution, "could not resolve target").Error())
		result.EndedAt = time.Now()
		return result
	}

	options, err := e.resolveOptions(step)
	if err != nil {
		result.Status = chain.StepFailed
		result.Errors = append(result.Errors, err.Error())
		result.EndedAt = time.Now()
		return result
	}

	spec := e.Tools.Get(step.Tool)
	if spec == nil {
		result.Status = chain.StepFailed
		result.Errors = append(result.Errors, verrors.New(verrors.KindToolMissing, "tool not found").WithTool(step.Tool).Error())
		result.EndedAt = time.Now()
		return result
	}

	timeout := step.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	for attempt := 0; attempt <= step.RetryCount; attempt++ {
		runResult, runErr := e.Runner.Run(ctx, spec, target, options, timeout)
		if runErr == nil && runResult.Success {
			result.Status = chain.StepCompleted
			result.Data = runResult.Data
			result.EndedAt = time.Now()
			result.Duration = result.EndedAt.Sub(result.StartedAt)
			result.Retries = attempt
			logging.ChainDebug("step completed: %s (%s)", step.ID, result.Duration)
			return result
		}

		if runErr != nil {
			result.Errors = append(result.Errors, runErr.Error())
		} else {
			result.Errors = append(result.Errors, runResult.Errors...)
		}

		if ctx.Err() != nil {
			result.Status = chain.StepFailed
			result.Errors = append(result.Errors, verrors.New(verrors.KindCancelled, "context cancelled").WithTool(step.Tool).Error())
			result.EndedAt = time.Now()
			return result
		}

		result.Retries = attempt
		if attempt < step.RetryCount {
			delay := step.RetryDelay * time.Duration(1<<uint(attempt))
			logging.ChainDebug("step %s attempt %d failed, retrying after %s", step.ID, attempt+1, delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				result.Status = chain.StepFailed
				result.Errors = append(result.Errors, verrors.New(verrors.KindCancelled, "context cancelled").WithTool(step.Tool).Error())
				result.EndedAt = time.Now()
				return result
			}
		}
	}

	if step.FallbackTool != "" && step.OnError == chain.OnErrorFallback {
		if fallback := e.tryFallback(ctx, step, target, options, timeout); fallback.Status == chain.StepCompleted {
			fallback.StartedAt = result.StartedAt
			return fallback
		}
	}

	result.Status = chain.StepFailed
	result.EndedAt = time.Now()
	result.Duration = result.EndedAt.Sub(result.StartedAt)
	return result
}

func (e *Executor) tryFallback(ctx context.Context, step chain.Step, target string, options toolspec.Options, timeout time.Duration) chain.StepResult {
	result := chain.StepResult{
		StepID:    step.ID,
		Tool:      step.FallbackTool,
		Status:    chain.StepRunning,
		StartedAt: time.Now(),
	}

	logging.Chain("trying fallback tool: %s", step.FallbackTool)

	spec := e.Tools.Get(step.FallbackTool)
	if spec == nil {
		result.Status = chain.StepFailed
		result.Errors = append(result.Errors, verrors.New(verrors.KindFallbackExhausted, "fallback tool not found").WithTool(step.FallbackTool).Error())
		result.EndedAt = time.Now()
		return result
	}

	runResult, err := e.Runner.Run(ctx, spec, target, options, timeout)
	switch {
	case err != nil:
		result.Status = chain.StepFailed
		result.Errors = append(result.Errors, verrors.Wrap(verrors.KindFallbackExhausted, "fallback failed", err).WithTool(step.FallbackTool).Error())
	case runResult.Success:
		result.Status = chain.StepCompleted
		result.Data = runResult.Data
	default:
		result.Status = chain.StepFailed
		result.Errors = runResult.Errors
	}

	result.EndedAt = time.Now()
	result.Duration = result.EndedAt.Sub(result.StartedAt)
	return result
}

// buildExecutionOrder groups steps into dependency-respecting waves; steps
// within a wave may run concurrently. Mirrors _build_execution_order's
// dependency-map plus parallel_with peer grouping.
func (e *Executor) buildExecutionOrder(steps []chain.Step) [][]chain.Step {
	stepByID := make(map[string]chain.Step, len(steps))
	for _, s := range steps {
		stepByID[s.ID] = s
	}

	dependencies := make(map[string]map[string]struct{}, len(steps))
	dependents := make(map[string]map[string]struct{}, len(steps))
	for _, s := range steps {
		if dependencies[s.ID] == nil {
			dependencies[s.ID] = make(map[string]struct{})
		}
		for _, dep := range s.DependsOn {
			if _, ok := stepByID[dep]; !ok {
				continue
			}
			dependencies[s.ID][dep] = struct{}{}
			if dependents[dep] == nil {
				dependents[dep] = make(map[string]struct{})
			}
			dependents[dep][s.ID] = struct{}{}
		}
	}

	var ready []chain.Step
	for _, s := range steps {
		if len(dependencies[s.ID]) == 0 {
			ready = append(ready, s)
		}
	}

	completed := make(map[string]struct{})
	var order [][]chain.Step

	contains := func(group []chain.Step, id string) bool {
		for _, s := range group {
			if s.ID == id {
				return true
			}
		}
		return false
	}

	for len(ready) > 0 {
		var parallelGroup []chain.Step
		var nextReady []chain.Step

		for _, step := range ready {
			allDepsComplete := true
			for dep := range dependencies[step.ID] {
				if _, ok := completed[dep]; !ok {
					allDepsComplete = false
					break
				}
			}
			if !allDepsComplete {
				nextReady = append(nextReady, step)
				continue
			}

			if len(step.ParallelWith) > 0 {
				if !contains(parallelGroup, step.ID) {
					parallelGroup = append(parallelGroup, step)
				}
				for _, peerID := range step.ParallelWith {
					if peer, ok := stepByID[peerID]; ok {
						if _, done := completed[peerID]; !done && !contains(parallelGroup, peerID) {
							parallelGroup = append(parallelGroup, peer)
						}
					}
				}
			} else {
				parallelGroup = append(parallelGroup, step)
			}
		}

		if len(parallelGroup) > 0 {
			order = append(order, parallelGroup)
			for _, step := range parallelGroup {
				completed[step.ID] = struct{}{}
				for depID := range dependents[step.ID] {
					if depStep, ok := stepByID[depID]; ok {
						if _, done := completed[depID]; !done && !contains(nextReady, depID) {
							nextReady = append(nextReady, depStep)
						}
					}
				}
			}
		}

		ready = nextReady
	}

	return order
}

func (e *Executor) resolveTarget(step chain.Step, chainTarget string) string {
	if step.TargetBinding != nil {
		if value := e.resolveBinding(*step.TargetBinding); value != nil {
			if s := stringifyTarget(value); s != "" {
				return s
			}
		}
	}
	if step.TargetStatic != "" {
		return step.TargetStatic
	}
	if chainTarget != "" {
		return chainTarget
	}
	return ""
}

func stringifyTarget(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []any:
		out := ""
		for i, item := range v {
			if i > 0 {
				out += ","
			}
			out += fmt.Sprint(item)
		}
		return out
	default:
		return fmt.Sprint(v)
	}
}

func (e *Executor) resolveOptions(step chain.Step) (toolspec.Options, error) {
	options := make(toolspec.Options, len(step.Options))
	for k, v := range step.Options {
		options[k] = v
	}

	for _, binding := range step.OptionBindings {
		value := e.resolveBinding(binding)
		switch {
		case value != nil:
			options[binding.TargetOption] = value
		case binding.Required:
			return nil, verrors.New(verrors.KindBindingResolution, fmt.Sprintf("required binding not found: %s.%s", binding.SourceStep, binding.SourcePath))
		case binding.Default != nil:
			options[binding.TargetOption] = binding.Default
		}
	}

	return options, nil
}

func (e *Executor) resolveBinding(binding chain.DataBinding) any {
	e.mu.Lock()
	stepResult, ok := e.stepResults[binding.SourceStep]
	e.mu.Unlock()
	if !ok {
		return binding.Default
	}

	value := pathresolve.Resolve(stepResult.Data, binding.SourcePath)
	if value == nil {
		return binding.Default
	}

	if binding.Transform != nil {
		return binding.Transform(value)
	}
	if binding.TransformName != "" {
		if transformed, ok := transform.Apply(binding.TransformName, value); ok {
			return transformed
		}
	}

	return value
}

func (e *Executor) evaluateCondition(cond chain.Condition) bool {
	e.mu.Lock()
	stepResult, ok := e.stepResults[cond.SourceStep]
	e.mu.Unlock()

	var result bool
	if !ok {
		result = false
	} else {
		value := pathresolve.Resolve(stepResult.Data, cond.Path)
		result = evaluateCheck(cond, value)
	}

	if cond.Negate {
		return !result
	}
	return result
}

func evaluateCheck(cond chain.Condition, value any) bool {
	switch cond.Check {
	case chain.CheckExists:
		return value != nil
	case chain.CheckCountGT:
		n, ok := sliceLen(value)
		threshold, okT := numeric(cond.Value)
		return ok && okT && float64(n) > threshold
	case chain.CheckCountLT:
		n, ok := sliceLen(value)
		threshold, okT := numeric(cond.Value)
		return ok && okT && float64(n) < threshold
	case chain.CheckValueEQ:
		return fmt.Sprint(value) == fmt.Sprint(cond.Value)
	case chain.CheckValueNE:
		return fmt.Sprint(value) != fmt.Sprint(cond.Value)
	case chain.CheckHasKey:
		m, ok := value.(map[string]any)
		if !ok {
			return false
		}
		key := fmt.Sprint(cond.Value)
		_, exists := m[key]
		return exists
	case chain.CheckContains:
		items, ok := sliceOf(value)
		if !ok {
			return false
		}
		target := fmt.Sprint(cond.Value)
		for _, item := range items {
			if fmt.Sprint(item) == target {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func sliceLen(value any) (int, bool) {
	items, ok := sliceOf(value)
	if !ok {
		return 0, false
	}
	return len(items), true
}

func sliceOf(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	default:
		return nil, false
	}
}

func numeric(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func (e *Executor) aggregateOutputs(def chain.Definition) map[string]any {
	output := make(map[string]any)
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, step := range def.Steps {
		result, ok := e.stepResults[step.ID]
		if !ok || result.Status != chain.StepCompleted {
			continue
		}
		key := step.OutputKey
		if key == "" {
			key = step.ID
		}
		output[key] = result.Data
	}
	return output
}

// GetStepResult returns the retained result for a step after Execute has run.
func (e *Executor) GetStepResult(stepID string) (chain.StepResult, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := e.stepResults[stepID]
	return r, ok
}
