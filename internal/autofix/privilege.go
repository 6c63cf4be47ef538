package autofix

import (
	"context"
	"fmt"
	"os"
)

// PrivHandler implements AUTO-PRIV: the core cannot re-exec itself with
// elevated privileges, so Fix always reports the need rather than resolving
// it — matching spec §4.4's "report the need, produce a relaunch command".
type PrivHandler struct {
	ElevationMethod string
}

func NewPrivHandler() *PrivHandler {
	return &PrivHandler{}
}

func isRoot() bool {
	return os.Geteuid() == 0
}

func (h *PrivHandler) elevationTool() string {
	switch {
	case which("pkexec"):
		return "pkexec"
	case which("sudo"):
		return "sudo"
	default:
		return ""
	}
}

func (h *PrivHandler) CanFix(ctx context.Context) bool {
	if isRoot() {
		return false
	}
	return which("pkexec") || which("sudo")
}

func (h *PrivHandler) Fix(ctx context.Context) bool {
	h.ElevationMethod = h.elevationTool()
	// The running process cannot elevate itself; the caller must relaunch
	// using RelaunchCommand.
	return false
}

func (h *PrivHandler) PromptText(ctx context.Context) string {
	if isRoot() {
		return "Already running as root."
	}
	method := h.elevationTool()
	if method == "" {
		method = "sudo"
	}
	return fmt.Sprintf("This action requires root privileges. Re-launch with %s?", method)
}

// RelaunchCommand returns the shell command to relaunch the current
// executable with elevated privileges, or "" if no elevation tool exists.
func RelaunchCommand(executable string) string {
	switch {
	case which("pkexec"):
		return fmt.Sprintf("pkexec %s", executable)
	case which("sudo"):
		return fmt.Sprintf("sudo %s", executable)
	default:
		return ""
	}
}

// RunPrivileged runs a single command with elevated privileges (self if
// already root, else pkexec/sudo), returning its exit success.
func RunPrivileged(ctx context.Context, command string) bool {
	if isRoot() {
		return runShell(ctx, command)
	}
	switch {
	case which("pkexec"):
		return runShell(ctx, "pkexec "+command)
	case which("sudo"):
		return runShell(ctx, "sudo "+command)
	default:
		return false
	}
}
