// Package autofix implements the thirteen AUTO-* handlers from spec §4.4:
// a closed set of remediation strategies a preflight check can invoke when a
// Requirement is unmet. Every handler satisfies the same narrow capability
// set — CanFix, Fix, PromptText — so the preflight checker can drive them
// uniformly without knowing which concrete handler it holds.
package autofix

import "context"

// Handler is the capability set every AUTO-* fixer implements.
type Handler interface {
	// CanFix reports whether this handler is in a position to attempt a fix
	// right now (binaries present, privileges available, session state set).
	CanFix(ctx context.Context) bool

	// Fix attempts the remediation and reports whether it succeeded. A
	// handler that requires interactive/out-of-process follow-up (AUTO-ACQUIRE,
	// AUTO-KEYS, AUTO-GUIDE) always returns false here; the caller is expected
	// to treat false plus a non-empty PromptText as "needs caller action", not
	// as a hard failure.
	Fix(ctx context.Context) bool

	// PromptText is the human-facing confirmation/status string shown before
	// or instead of running Fix.
	PromptText(ctx context.Context) string
}

// Label is one of the thirteen closed auto-fix identifiers named in a
// Requirement's AutoLabel field.
type Label string

const (
	LabelInstall  Label = "AUTO-INSTALL"
	LabelPriv     Label = "AUTO-PRIV"
	LabelMon      Label = "AUTO-MON"
	LabelIface    Label = "AUTO-IFACE"
	LabelAcquire  Label = "AUTO-ACQUIRE"
	LabelData     Label = "AUTO-DATA"
	LabelKeys     Label = "AUTO-KEYS"
	LabelSetup    Label = "AUTO-SETUP"
	LabelFallback Label = "AUTO-FALLBACK"
	LabelGuide    Label = "AUTO-GUIDE"
	LabelCleanup  Label = "AUTO-CLEANUP"
	LabelValidate Label = "AUTO-VALIDATE"
	LabelUpdate   Label = "AUTO-UPDATE"
)

// runShell is the single seam every handler uses to spawn a remediation
// command, so tests can substitute a fake without touching each handler.
var runShell = defaultRunShell

var (
	_ Handler = (*InstallHandler)(nil)
	_ Handler = (*PrivHandler)(nil)
	_ Handler = (*MonHandler)(nil)
	_ Handler = (*IfaceHandler)(nil)
	_ Handler = (*AcquireHandler)(nil)
	_ Handler = (*DataHandler)(nil)
	_ Handler = (*KeysHandler)(nil)
	_ Handler = (*SetupHandler)(nil)
	_ Handler = (*FallbackHandler)(nil)
	_ Handler = (*GuideHandler)(nil)
	_ Handler = (*CleanupHandler)(nil)
	_ Handler = (*ValidateHandler)(nil)
	_ Handler = (*UpdateHandler)(nil)
)
