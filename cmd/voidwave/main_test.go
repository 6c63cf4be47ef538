package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"voidwave/internal/config"
	"voidwave/internal/orchestrator"
)

func setupOrchestrator(t *testing.T) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Home = t.TempDir()
	o, err := orchestrator.New(cfg, "cli-test")
	require.NoError(t, err)
	orch = o
}

func TestListActionsCmdRunsWithoutError(t *testing.T) {
	setupOrchestrator(t)
	require.NoError(t, listActionsCmd.RunE(listActionsCmd, nil))
}

func TestListToolsCmdRunsWithoutError(t *testing.T) {
	setupOrchestrator(t)
	require.NoError(t, listToolsCmd.RunE(listToolsCmd, nil))
}

func TestListChainsCmdRunsWithoutError(t *testing.T) {
	setupOrchestrator(t)
	require.NoError(t, listChainsCmd.RunE(listChainsCmd, nil))
}

func TestCheckCmdUnrecognizedActionErrors(t *testing.T) {
	setupOrchestrator(t)
	checkAction = "not-a-real-action"
	require.Error(t, checkCmd.RunE(checkCmd, nil))
}

func TestStopAllCmdRunsWithoutError(t *testing.T) {
	setupOrchestrator(t)
	require.NoError(t, stopAllCmd.RunE(stopAllCmd, nil))
}
