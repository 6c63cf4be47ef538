// Package preflight implements the preflight checker (spec §5): given an
// action name, classify every one of its Requirements as met, auto-fixable,
// or requiring manual intervention, and optionally drive the auto-fix
// handlers to resolve what can be resolved automatically. Grounded on
// _examples/original_source/src/voidwave/automation/preflight.py's
// PreflightChecker.
package preflight

import (
	"context"
	"os/exec"

	"voidwave/internal/autofix"
	"voidwave/internal/logging"
	"voidwave/internal/requirement"
)

func toolPresent(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Resolver constructs the concrete autofix.Handler for a given AUTO-* label
// and the requirement it is being asked to satisfy. The Python original
// looks the handler class up in a flat AUTO_REGISTRY dict and instantiates
// it with just the requirement's name; Go handlers take varied constructor
// arguments (layout paths, data directories, interface kind...), so instead
// of a map[Label]func(string) autofix.Handler this is supplied by the
// caller, which knows how to wire each label to its handler's real
// constructor. See DESIGN.md for this Open Question's resolution.
type Resolver func(label autofix.Label, req requirement.Requirement) (autofix.Handler, bool)

// Checker evaluates and resolves Requirements for a single session.
type Checker struct {
	Session  requirement.Session
	Resolver Resolver
}

// New builds a Checker bound to the given session state and handler resolver.
func New(sess requirement.Session, resolver Resolver) *Checker {
	return &Checker{Session: sess, Resolver: resolver}
}

// Check classifies every Requirement of action into met/fixable/manual,
// mirroring PreflightChecker.check.
func (c *Checker) Check(ctx context.Context, action string) (requirement.PreflightResult, bool) {
	reqs, ok := requirement.Requirements(action, c.Session)
	if !ok {
		return requirement.PreflightResult{}, false
	}

	result := requirement.PreflightResult{Action: action, Requirements: reqs}
	allMet := true
	for _, req := range reqs {
		switch c.classify(ctx, req) {
		case requirement.StatusMet:
			continue
		case requirement.StatusFixable:
			allMet = false
			result.Fixable = append(result.Fixable, req)
		default:
			allMet = false
			result.Manual = append(result.Manual, req)
		}
	}
	result.AllMet = allMet
	return result, true
}

// classify mirrors PreflightChecker._check_requirement: MET if the primary
// check or any alternative tool passes, FIXABLE if an AUTO-* handler or a
// requirement-level Fix exists, MANUAL otherwise. The original defines a
// MISSING status it never actually returns; this mirrors that by never
// producing a status beyond these three.
func (c *Checker) classify(ctx context.Context, req requirement.Requirement) requirement.Status {
	if req.Check != nil && req.Check() {
		return requirement.StatusMet
	}
	for _, alt := range req.Alternatives {
		if toolPresent(alt) {
			return requirement.StatusMet
		}
	}
	if req.AutoLabel != "" {
		if c.Resolver != nil {
			if h, ok := c.Resolver(autofix.Label(req.AutoLabel), req); ok && h != nil && h.CanFix(ctx) {
				return requirement.StatusFixable
			}
		}
		return requirement.StatusFixable
	}
	if req.Fix != nil {
		return requirement.StatusFixable
	}
	return requirement.StatusManual
}

// FixAll attempts to resolve every fixable requirement in result, trying the
// AUTO-* handler first and falling back to the requirement's own Fix,
// mirroring PreflightChecker.fix_all / _try_fix. It returns a fresh
// PreflightResult reflecting the post-fix state.
func (c *Checker) FixAll(ctx context.Context, result requirement.PreflightResult) requirement.PreflightResult {
	for _, req := range result.Fixable {
		if c.tryFix(ctx, req) {
			logging.Preflight("fixed requirement: %s", req.Name)
			continue
		}
		logging.PreflightWarn("failed to auto-fix requirement: %s", req.Name)
	}
	refreshed, ok := c.Check(ctx, result.Action)
	if !ok {
		return result
	}
	return refreshed
}

func (c *Checker) tryFix(ctx context.Context, req requirement.Requirement) bool {
	if req.AutoLabel != "" && c.Resolver != nil {
		if h, ok := c.Resolver(autofix.Label(req.AutoLabel), req); ok && h != nil {
			if h.Fix(ctx) {
				return true
			}
		}
	}
	if req.Fix != nil {
		return req.Fix()
	}
	return false
}
