package autofix

import (
	"context"
	"sort"
	"sync"

	"voidwave/internal/logging"
)

// CleanupAction is one deferred system-state restoration registered by a
// chain step, drained only on explicit teardown (spec §4.4, "Cleanup stack
// lifetime").
type CleanupAction struct {
	Name     string
	Action   func(ctx context.Context) error
	Priority int // higher runs first
}

var (
	cleanupMu    sync.Mutex
	cleanupStack []CleanupAction
)

// RegisterCleanup pushes an action onto the process-wide cleanup stack.
func RegisterCleanup(name string, priority int, action func(ctx context.Context) error) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	cleanupStack = append(cleanupStack, CleanupAction{Name: name, Action: action, Priority: priority})
}

// PendingCleanupActions returns the names of actions not yet drained.
func PendingCleanupActions() []string {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	names := make([]string, len(cleanupStack))
	for i, a := range cleanupStack {
		names[i] = a.Name
	}
	return names
}

// ClearCleanupStack discards pending actions without running them.
func ClearCleanupStack() {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	cleanupStack = nil
}

// DrainCleanupStack runs every pending action in priority order (highest
// first), clearing the stack regardless of individual failures, and
// reports whether all actions succeeded.
func DrainCleanupStack(ctx context.Context) bool {
	cleanupMu.Lock()
	actions := make([]CleanupAction, len(cleanupStack))
	copy(actions, cleanupStack)
	cleanupStack = nil
	cleanupMu.Unlock()

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Priority > actions[j].Priority
	})

	success := true
	for _, a := range actions {
		if err := a.Action(ctx); err != nil {
			logging.AutofixWarn("cleanup action %q failed: %v", a.Name, err)
			success = false
		}
	}
	return success
}

// CleanupHandler implements AUTO-CLEANUP: drains the process-wide stack on
// explicit invocation.
type CleanupHandler struct{}

func NewCleanupHandler() *CleanupHandler {
	return &CleanupHandler{}
}

func (h *CleanupHandler) CanFix(ctx context.Context) bool {
	return len(PendingCleanupActions()) > 0
}

func (h *CleanupHandler) Fix(ctx context.Context) bool {
	return DrainCleanupStack(ctx)
}

func (h *CleanupHandler) PromptText(ctx context.Context) string {
	count := len(PendingCleanupActions())
	if count == 0 {
		return "No cleanup actions pending."
	}
	return "Perform pending cleanup actions?"
}

// RestoreNetworkManager restarts the NetworkManager service.
func RestoreNetworkManager(ctx context.Context) error {
	return shellErr(ctx, "systemctl start NetworkManager")
}

// RestoreManagedMode brings interface back to managed mode.
func RestoreManagedMode(ctx context.Context, interfaceName string) error {
	runShell(ctx, "ip link set "+interfaceName+" down")
	runShell(ctx, "iw dev "+interfaceName+" set type managed")
	runShell(ctx, "ip link set "+interfaceName+" up")
	return nil
}

// DisableIPForwarding turns off kernel IP forwarding.
func DisableIPForwarding(ctx context.Context) error {
	return shellErr(ctx, "sysctl -w net.ipv4.ip_forward=0")
}

// FlushIPTables clears filter, nat and mangle tables.
func FlushIPTables(ctx context.Context) error {
	runShell(ctx, "iptables -F")
	runShell(ctx, "iptables -t nat -F")
	runShell(ctx, "iptables -t mangle -F")
	return nil
}

// StopHostapd kills any running hostapd process.
func StopHostapd(ctx context.Context) error {
	runShell(ctx, "killall hostapd 2>/dev/null; true")
	return nil
}

// StopDnsmasq kills any running dnsmasq process.
func StopDnsmasq(ctx context.Context) error {
	runShell(ctx, "killall dnsmasq 2>/dev/null; true")
	return nil
}

func shellErr(ctx context.Context, command string) error {
	if !runShell(ctx, command) {
		return errCleanupCommandFailed
	}
	return nil
}
