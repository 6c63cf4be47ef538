// Package verrors defines VOIDWAVE's closed error-kind taxonomy (spec §7):
// errors are classified by kind, not by bespoke Go error types, so callers
// can branch on "what category of failure is this" without a type-switch
// over a dozen structs. Grounded on the same "kinds, not types" framing
// spec.md itself uses, expressed the idiomatic Go way via errors.Is/As
// support (a sentinel Kind wrapped with context, unwrappable back to it).
package verrors

import (
	"errors"
)

// Kind is one of the closed set of error categories spec §7 names.
type Kind string

const (
	KindToolMissing       Kind = "tool-missing"
	KindPermissionDenied  Kind = "permission-denied"
	KindTargetValidation  Kind = "target-validation"
	KindBindingResolution Kind = "binding-resolution"
	KindStepExecution     Kind = "step-execution"
	KindTimeout           Kind = "timeout"
	KindCancelled         Kind = "cancelled"
	KindFallbackExhausted Kind = "fallback-exhausted"
	KindConfiguration     Kind = "configuration"
)

// Error pairs a Kind with a human-readable summary and optional tool/target/
// exit-code context, per spec §7's "user-visible failure behavior".
type Error struct {
	Kind     Kind
	Summary  string
	Tool     string
	Target   string
	ExitCode int
	Err      error
}

func (e *Error) Error() string {
	msg := string(e.Kind) + ": " + e.Summary
	if e.Tool != "" {
		msg += " (tool=" + e.Tool + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the wrapped error, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so
// errors.Is(err, verrors.New(KindTimeout, "")) classifies by kind alone.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

// New builds a bare *Error of the given kind.
func New(kind Kind, summary string) *Error {
	return &Error{Kind: kind, Summary: summary}
}

// Wrap builds a *Error of the given kind around an underlying error.
func Wrap(kind Kind, summary string, err error) *Error {
	return &Error{Kind: kind, Summary: summary, Err: err}
}

// WithTool returns a copy of e with Tool set.
func (e *Error) WithTool(tool string) *Error {
	cp := *e
	cp.Tool = tool
	return &cp
}

// WithTarget returns a copy of e with Target set.
func (e *Error) WithTarget(target string) *Error {
	cp := *e
	cp.Target = target
	return &cp
}

// WithExitCode returns a copy of e with ExitCode set.
func (e *Error) WithExitCode(code int) *Error {
	cp := *e
	cp.ExitCode = code
	return &cp
}

// KindOf extracts the Kind from err if it (or something it wraps) is a
// *Error, reporting false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Is is a thin errors.Is wrapper comparing just by Kind, for call sites that
// want `if verrors.Is(err, verrors.KindTimeout)` without constructing a
// sentinel error.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
