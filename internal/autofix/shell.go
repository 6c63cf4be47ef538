package autofix

import (
	"context"
	"os/exec"

	"voidwave/internal/logging"
)

// which reports whether name resolves on PATH, mirroring the Python
// handlers' repeated shutil.which(...) checks.
func which(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// runShellQuiet runs command through /bin/sh -c and reports exit success,
// without logging — used for cheap probes like "is this interface monitor
// mode" that are expected to fail routinely and aren't remediation attempts.
func runShellQuiet(command string) bool {
	cmd := exec.Command("/bin/sh", "-c", command)
	return cmd.Run() == nil
}

// defaultRunShell runs command through /bin/sh -c, discarding output, and
// reports whether it exited zero. Handlers that need stdout (none currently
// do — all six-ish commands here are fire-and-verify) would add a variant.
func defaultRunShell(ctx context.Context, command string) bool {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	err := cmd.Run()
	if err != nil {
		logging.AutofixWarn("shell command failed: %s: %v", command, err)
		return false
	}
	return true
}
