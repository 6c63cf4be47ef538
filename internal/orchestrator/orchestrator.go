// Package orchestrator wires the independently-testable VOIDWAVE packages
// (config, events, toolspec, runner, chain, chainexec, control, gate,
// session, preflight, autofix) into the single object cmd/voidwave drives.
// Grounded on orchestration/orchestrator.py's VoidwaveOrchestrator, which
// plays the same role in the original: it owns no policy of its own, it
// just hands each package the collaborators it needs.
package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"voidwave/internal/autofix"
	"voidwave/internal/chain"
	"voidwave/internal/chainexec"
	"voidwave/internal/config"
	"voidwave/internal/control"
	"voidwave/internal/events"
	"voidwave/internal/gate"
	"voidwave/internal/preflight"
	"voidwave/internal/requirement"
	"voidwave/internal/runner"
	"voidwave/internal/session"
	"voidwave/internal/toolspec"
)

// Orchestrator is the single composition root: every long-lived collaborator
// in the system hangs off it, and every subcommand in cmd/voidwave is a thin
// call into one of these fields.
type Orchestrator struct {
	Config *config.Config
	Layout config.Layout
	Bus    *events.Bus

	Tools    *toolspec.Registry
	Runner   *runner.Runner
	Chains   *chain.Registry
	Executor *chainexec.Executor
	Control  *control.Controller
	Gate     *gate.Gate
	Session  *session.MapSession
	Preflight *preflight.Checker
}

// New builds an Orchestrator for a fresh engagement session named sessionName.
func New(cfg *config.Config, sessionName string) (*Orchestrator, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	layout := cfg.NewLayout()

	bus := events.NewBus()
	tools := toolspec.Builtin()
	run := runner.New(bus, cfg.GetGraceWindow())
	chains := chain.Builtin()
	exec := chainexec.New(tools, run, bus)
	ctrl := control.New(bus)
	gt := gate.NewWithLimits(gateLimitsAsInt64(cfg.GateLimits.AsMap()))
	sess := session.New(sessionName, bus)

	o := &Orchestrator{
		Config:   cfg,
		Layout:   layout,
		Bus:      bus,
		Tools:    tools,
		Runner:   run,
		Chains:   chains,
		Executor: exec,
		Control:  ctrl,
		Gate:     gt,
		Session:  sess,
	}
	o.Preflight = preflight.New(sess, o.ResolveAutoFix)
	return o, nil
}

// ResolveAutoFix is the preflight.Resolver wired into o.Preflight. It maps
// each of the live AUTO-* labels (spec §4.4) to the concrete autofix.Handler
// its requirement needs, using the requirement's Name as the only
// per-requirement signal (matching what the requirement table actually
// hands out — see DESIGN.md) plus orchestrator-level state (the config
// layout) for handlers that need more than a bare string.
func (o *Orchestrator) ResolveAutoFix(label autofix.Label, req requirement.Requirement) (autofix.Handler, bool) {
	switch label {
	case autofix.LabelInstall:
		return autofix.NewInstallHandler(req.Name), true

	case autofix.LabelPriv:
		return autofix.NewPrivHandler(), true

	case autofix.LabelIface:
		return autofix.NewIfaceHandler("wireless"), true

	case autofix.LabelMon:
		return autofix.NewMonHandler(o.Session.Interface()), true

	case autofix.LabelAcquire:
		return autofix.NewAcquireHandler(acquireInputType(req.Name)), true

	case autofix.LabelData:
		if req.Name != "wordlist_available" {
			return nil, false
		}
		return autofix.NewDataHandler("rockyou", "", o.Layout.Wordlists(), o.Layout.DataDir()), true

	case autofix.LabelKeys:
		service := strings.TrimSuffix(req.Name, "_api_key")
		return autofix.NewKeysHandler(service, o.Layout.Keys()), true

	case autofix.LabelSetup:
		return autofix.NewSetupHandler(setupType(req.Name), o.Layout), true

	default:
		// AUTO-FALLBACK, AUTO-GUIDE, AUTO-CLEANUP, AUTO-VALIDATE and
		// AUTO-UPDATE have no requirement-table entry to resolve from (see
		// DESIGN.md): nothing in the requirement table carries AutoLabel
		// values for them, so the preflight checker never asks for them.
		// They remain reachable directly off the Orchestrator for callers
		// that want a fallback, cleanup, or guide step outside the
		// requirement model.
		return nil, false
	}
}

// gateLimitsAsInt64 adapts config.GateLimits.AsMap's int-valued limits to
// the int64 weights golang.org/x/sync/semaphore.Weighted expects.
func gateLimitsAsInt64(limits map[string]int) map[string]int64 {
	out := make(map[string]int64, len(limits))
	for k, v := range limits {
		out[k] = int64(v)
	}
	return out
}

// acquireInputType maps a requirement's Name to the input-kind key
// AcquireHandler's prompt/subflow tables are keyed by.
func acquireInputType(name string) string {
	switch name {
	case "target_selected":
		return "target"
	case "capture_file":
		return "capture_file"
	case "hash_file":
		return "hash_file"
	case "handshake_captured":
		return "handshake"
	default:
		return name
	}
}

// setupType maps a requirement's Name to the SetupHandler's SetupType key.
func setupType(name string) string {
	switch name {
	case "captive_portal":
		return "portal"
	default:
		return name
	}
}

// FallbackHandler builds the AUTO-FALLBACK handler for toolName, for callers
// that want to offer an alternative tool outside the requirement/preflight
// path (e.g. after a chain step exhausts its own fallback).
func (o *Orchestrator) FallbackHandler(toolName string) *autofix.FallbackHandler {
	return autofix.NewFallbackHandler(toolName)
}

// GuideHandler builds the AUTO-GUIDE handler for guideType, for manual-step
// walkthroughs that have no corresponding requirement entry.
func (o *Orchestrator) GuideHandler(guideType string, customSteps []string) *autofix.GuideHandler {
	return autofix.NewGuideHandler(guideType, customSteps)
}

// CleanupHandler builds the AUTO-CLEANUP handler used after a session ends.
func (o *Orchestrator) CleanupHandler() *autofix.CleanupHandler {
	return autofix.NewCleanupHandler()
}

// ValidateHandler builds the AUTO-VALIDATE handler for a free-form
// input/value pair, used outside the requirement table (e.g. CLI flag
// validation before a chain run even starts).
func (o *Orchestrator) ValidateHandler(inputType, value string) *autofix.ValidateHandler {
	return autofix.NewValidateHandler(inputType, value)
}

// UpdateHandler builds the AUTO-UPDATE handler for refreshing a data source.
func (o *Orchestrator) UpdateHandler(source string) *autofix.UpdateHandler {
	return autofix.NewUpdateHandler(source, o.Layout.DataDir())
}

// RunChain runs a registered chain by ID against target, gating the whole
// run behind the concurrency gate for category, and registering it with the
// execution controller so STOP_ALL_TOOLS can cancel it mid-flight.
func (o *Orchestrator) RunChain(ctx context.Context, chainID, target, category string) (chain.Result, error) {
	def, ok := o.Chains.Get(chainID)
	if !ok {
		return chain.Result{}, fmt.Errorf("orchestrator: unknown chain %q", chainID)
	}

	if err := o.Gate.Acquire(ctx, category); err != nil {
		return chain.Result{}, err
	}
	defer o.Gate.Release(category)

	runCtx, cancel := context.WithCancel(ctx)
	id := "chain_" + chainID
	o.Control.Register(id, chainID, target, cancel)
	defer o.Control.Unregister(id)

	return o.Executor.Execute(runCtx, def, target)
}

// CheckAction runs the preflight checker for action against the
// orchestrator's session, without attempting any auto-fix.
func (o *Orchestrator) CheckAction(ctx context.Context, action string) (requirement.PreflightResult, bool) {
	return o.Preflight.Check(ctx, action)
}

// FixAction runs the preflight checker for action and then attempts to
// auto-fix every fixable requirement via ResolveAutoFix.
func (o *Orchestrator) FixAction(ctx context.Context, action string) (requirement.PreflightResult, bool) {
	result, ok := o.CheckAction(ctx, action)
	if !ok {
		return result, false
	}
	return o.Preflight.FixAll(ctx, result), true
}

// Shutdown cancels every in-flight tool/chain run via the execution
// controller, mirroring the original's graceful-shutdown path.
func (o *Orchestrator) Shutdown() control.StopAllResult {
	return o.Control.StopAll(o.Config.GetGraceWindow())
}
