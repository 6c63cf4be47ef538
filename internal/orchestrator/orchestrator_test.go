package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voidwave/internal/autofix"
	"voidwave/internal/chain"
	"voidwave/internal/config"
	"voidwave/internal/requirement"
)

func newTestOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Home = t.TempDir()
	o, err := New(cfg, "test-session")
	require.NoError(t, err)
	return o
}

func TestNewWiresEveryCollaborator(t *testing.T) {
	o := newTestOrchestrator(t)
	assert.NotNil(t, o.Bus)
	assert.NotNil(t, o.Tools)
	assert.NotNil(t, o.Runner)
	assert.NotNil(t, o.Chains)
	assert.NotNil(t, o.Executor)
	assert.NotNil(t, o.Control)
	assert.NotNil(t, o.Gate)
	assert.NotNil(t, o.Session)
	assert.NotNil(t, o.Preflight)
}

func TestResolveAutoFixInstall(t *testing.T) {
	o := newTestOrchestrator(t)
	h, ok := o.ResolveAutoFix(autofix.LabelInstall, requirement.Requirement{Name: "nmap"})
	require.True(t, ok)
	install, isInstall := h.(*autofix.InstallHandler)
	require.True(t, isInstall)
	assert.Equal(t, "nmap", install.ToolName)
}

func TestResolveAutoFixAcquireMapsRequirementNames(t *testing.T) {
	o := newTestOrchestrator(t)
	cases := map[string]string{
		"target_selected":    "target",
		"capture_file":       "capture_file",
		"hash_file":          "hash_file",
		"handshake_captured": "handshake",
	}
	for reqName, wantInputType := range cases {
		h, ok := o.ResolveAutoFix(autofix.LabelAcquire, requirement.Requirement{Name: reqName})
		require.True(t, ok)
		acq := h.(*autofix.AcquireHandler)
		assert.Equal(t, wantInputType, acq.InputType)
	}
}

func TestResolveAutoFixDataOnlyHandlesWordlist(t *testing.T) {
	o := newTestOrchestrator(t)
	h, ok := o.ResolveAutoFix(autofix.LabelData, requirement.Requirement{Name: "wordlist_available"})
	require.True(t, ok)
	assert.NotNil(t, h)

	_, ok = o.ResolveAutoFix(autofix.LabelData, requirement.Requirement{Name: "something_else"})
	assert.False(t, ok)
}

func TestResolveAutoFixKeysStripsServiceSuffix(t *testing.T) {
	o := newTestOrchestrator(t)
	h, ok := o.ResolveAutoFix(autofix.LabelKeys, requirement.Requirement{Name: "shodan_api_key"})
	require.True(t, ok)
	keys := h.(*autofix.KeysHandler)
	assert.Equal(t, "shodan", keys.Service)
}

func TestResolveAutoFixSetupMapsCaptivePortal(t *testing.T) {
	o := newTestOrchestrator(t)
	h, ok := o.ResolveAutoFix(autofix.LabelSetup, requirement.Requirement{Name: "captive_portal"})
	require.True(t, ok)
	setup := h.(*autofix.SetupHandler)
	assert.Equal(t, "portal", setup.SetupType)
}

func TestResolveAutoFixUnmappedLabelReturnsFalse(t *testing.T) {
	o := newTestOrchestrator(t)
	_, ok := o.ResolveAutoFix(autofix.LabelCleanup, requirement.Requirement{Name: "anything"})
	assert.False(t, ok)
}

func TestRunChainUnknownIDErrors(t *testing.T) {
	o := newTestOrchestrator(t)
	_, err := o.RunChain(context.Background(), "does-not-exist", "10.0.0.1", "network_scanner")
	assert.Error(t, err)
}

func TestRunChainExecutesRegisteredChain(t *testing.T) {
	o := newTestOrchestrator(t)
	o.Chains.Register(chain.Definition{
		ID:   "noop-chain",
		Name: "noop",
		Steps: []chain.Step{
			{ID: "s1", Tool: "nmap", TargetStatic: "scan"},
		},
	})

	result, err := o.RunChain(context.Background(), "noop-chain", "10.0.0.1", "network_scanner")
	require.NoError(t, err)
	assert.Equal(t, "noop-chain", result.ChainID)
}

func TestCheckActionUnknownAction(t *testing.T) {
	o := newTestOrchestrator(t)
	_, ok := o.CheckAction(context.Background(), "not-a-real-action")
	assert.False(t, ok)
}

func TestShutdownStopsEverything(t *testing.T) {
	o := newTestOrchestrator(t)
	result := o.Shutdown()
	assert.Equal(t, 0, result.Cancelled)
}
