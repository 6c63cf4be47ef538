// Package runner implements the tool invocation layer (spec §4.3): spawn an
// external tool in its own process group, stream and classify its output
// line-by-line, enforce a timeout with a graceful-then-forceful shutdown,
// and return a structured result. Grounded on
// _examples/original_source/src/voidwave/tools/base.py's
// BaseToolWrapper._run_subprocess/_stream_output/_classify_line/cancel, with
// process-group signalling expressed the idiomatic-Go way via
// syscall.SysProcAttr{Setpgid: true} instead of asyncio's
// start_new_session=True.
package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"voidwave/internal/events"
	"voidwave/internal/logging"
	"voidwave/internal/toolspec"
)

// ErrToolNotFound is returned when a spec's binary is not on PATH; this must
// surface before any argv is built (spec §4.3).
var ErrToolNotFound = errors.New("tool binary not found on PATH")

// Result is the outcome of one tool invocation.
type Result struct {
	Success  bool
	Data     toolspec.Output
	Errors   []string
	ExitCode int
	Duration time.Duration
}

// Runner spawns and supervises external tool processes.
type Runner struct {
	Bus         *events.Bus
	GraceWindow time.Duration

	lookPath func(string) (string, error)

	pacingMu sync.Mutex
	pacing   map[string]*rate.Limiter
}

// New builds a Runner that emits lifecycle events on bus and, on timeout or
// cancellation, waits grace before escalating from SIGTERM to SIGKILL.
func New(bus *events.Bus, grace time.Duration) *Runner {
	return &Runner{Bus: bus, GraceWindow: grace, lookPath: exec.LookPath, pacing: make(map[string]*rate.Limiter)}
}

// paceLaunch blocks until tool's request-pacing token bucket has a token
// available, when the caller supplied a "requests_per_second" option (web
// fuzzer/subdomain-finder scenarios that want to stay under a target's rate
// limit across repeated invocations of the same tool). Tools that don't set
// the option launch immediately.
func (r *Runner) paceLaunch(ctx context.Context, toolName string, options toolspec.Options) error {
	perSec, ok := options["requests_per_second"]
	if !ok {
		return nil
	}
	var limit float64
	switch v := perSec.(type) {
	case int:
		limit = float64(v)
	case float64:
		limit = v
	default:
		return nil
	}
	if limit <= 0 {
		return nil
	}

	r.pacingMu.Lock()
	limiter, ok := r.pacing[toolName]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(limit), 1)
		r.pacing[toolName] = limiter
	}
	r.pacingMu.Unlock()

	return limiter.Wait(ctx)
}

func (r *Runner) emit(name events.Name, payload events.Payload) {
	if r.Bus == nil {
		return
	}
	r.Bus.Emit(name, payload)
}

// classifyLine buckets a line of tool output by keyword heuristic, mirroring
// _classify_line's substring-match dictionary.
func classifyLine(line string) string {
	lower := strings.ToLower(line)
	for _, w := range []string{"error", "fail", "critical"} {
		if strings.Contains(lower, w) {
			return "error"
		}
	}
	for _, w := range []string{"warn", "caution"} {
		if strings.Contains(lower, w) {
			return "warning"
		}
	}
	for _, w := range []string{"success", "found", "open", "vuln"} {
		if strings.Contains(lower, w) {
			return "success"
		}
	}
	return "info"
}

// Run executes spec against target with the given options, enforcing
// timeout. It always returns a Result; err is non-nil only for setup
// failures that precede process spawn (missing binary, bad argv).
func (r *Runner) Run(ctx context.Context, spec toolspec.Spec, target string, options toolspec.Options, timeout time.Duration) (Result, error) {
	lookPath := r.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	binPath, err := lookPath(spec.Name())
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrToolNotFound, spec.Name())
	}

	if err := toolspec.ValidateOptions(spec, options); err != nil {
		return Result{}, err
	}

	if err := r.paceLaunch(ctx, spec.Name(), options); err != nil {
		return Result{}, fmt.Errorf("rate-limit wait for %s: %w", spec.Name(), err)
	}

	argv, err := spec.BuildCommand(target, options)
	if err != nil {
		return Result{}, fmt.Errorf("build command for %s: %w", spec.Name(), err)
	}

	cmd := exec.Command(binPath, argv...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	r.emit(events.ToolStarted, events.Payload{
		"tool": spec.Name(), "target": target, "command": strings.Join(append([]string{binPath}, argv...), " "),
	})

	start := time.Now()
	if err := cmd.Start(); err != nil {
		pw.Close()
		return Result{Success: false, Errors: []string{err.Error()}}, nil
	}

	var lines []string
	lineDone := make(chan struct{})
	go func() {
		defer close(lineDone)
		scanner := bufio.NewScanner(pr)
		scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			lines = append(lines, line)
			r.emit(events.ToolOutput, events.Payload{
				"tool": spec.Name(), "line": line, "level": classifyLine(line),
			})
		}
	}()

	waitDone := make(chan error, 1)
	go func() { waitDone <- cmd.Wait() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var waitErr error
	var timedOut, cancelled bool
	select {
	case waitErr = <-waitDone:
	case <-timer.C:
		timedOut = true
		r.terminate(cmd)
		waitErr = <-waitDone
	case <-ctx.Done():
		cancelled = true
		r.terminate(cmd)
		waitErr = <-waitDone
	}

	pw.Close()
	<-lineDone

	duration := time.Since(start)
	exitCode := 0
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}

	raw := strings.Join(lines, "\n")
	data := spec.ParseOutput(raw)

	result := Result{
		Success:  waitErr == nil && exitCode == 0,
		Data:     data,
		ExitCode: exitCode,
		Duration: duration,
	}

	switch {
	case cancelled:
		result.Errors = append(result.Errors, "cancelled")
		r.emit(events.ToolFailed, events.Payload{"tool": spec.Name(), "target": target, "error": "cancelled"})
	case timedOut:
		result.Errors = append(result.Errors, fmt.Sprintf("tool timed out after %s", timeout))
		logging.RunnerWarn("tool %s timed out after %s", spec.Name(), timeout)
		r.emit(events.ToolFailed, events.Payload{"tool": spec.Name(), "target": target, "error": "timeout"})
	case waitErr != nil:
		result.Errors = append(result.Errors, waitErr.Error())
		r.emit(events.ToolFailed, events.Payload{"tool": spec.Name(), "target": target, "error": waitErr.Error()})
	default:
		r.emit(events.ToolCompleted, events.Payload{
			"tool": spec.Name(), "target": target, "exit_code": exitCode, "duration": duration.Seconds(),
		})
	}

	return result, nil
}

// terminate signals the whole process group: SIGTERM, then after
// GraceWindow, SIGKILL if it hasn't exited.
func (r *Runner) terminate(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	pgid, err := syscall.Getpgid(cmd.Process.Pid)
	if err != nil {
		cmd.Process.Kill()
		return
	}
	syscall.Kill(-pgid, syscall.SIGTERM)

	grace := r.GraceWindow
	if grace <= 0 {
		grace = 5 * time.Second
	}
	time.Sleep(grace)
	syscall.Kill(-pgid, syscall.SIGKILL)
}
