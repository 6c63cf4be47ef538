package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "voidwave" {
		t.Errorf("expected Name=voidwave, got %s", cfg.Name)
	}
	if cfg.Execution.DefaultTimeout != "300s" {
		t.Errorf("expected DefaultTimeout=300s, got %s", cfg.Execution.DefaultTimeout)
	}
	if cfg.GateLimits.PasswordCracker != 1 {
		t.Errorf("expected PasswordCracker=1 (GPU exclusivity), got %d", cfg.GateLimits.PasswordCracker)
	}
}

func TestConfigSaveLoad(t *testing.T) {
	t.Setenv("VOIDWAVE_HOME", "")
	t.Setenv("VOIDWAVE_DEFAULT_TIMEOUT", "")
	t.Setenv("VOIDWAVE_DEBUG", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Execution.DefaultTimeout = "120s"
	cfg.GateLimits.WebScanner = 50

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Execution.DefaultTimeout != "120s" {
		t.Errorf("expected DefaultTimeout=120s, got %s", loaded.Execution.DefaultTimeout)
	}
	if loaded.GateLimits.WebScanner != 50 {
		t.Errorf("expected WebScanner=50, got %d", loaded.GateLimits.WebScanner)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load should not error on a missing file: %v", err)
	}
	if cfg.Name != "voidwave" {
		t.Errorf("expected defaults to be used, got Name=%s", cfg.Name)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VOIDWAVE_HOME", "/tmp/custom-voidwave-home")
	t.Setenv("VOIDWAVE_DEFAULT_TIMEOUT", "60s")
	t.Setenv("VOIDWAVE_DEBUG", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Home != "/tmp/custom-voidwave-home" {
		t.Errorf("expected env override of Home, got %s", cfg.Home)
	}
	if cfg.Execution.DefaultTimeout != "60s" {
		t.Errorf("expected env override of DefaultTimeout, got %s", cfg.Execution.DefaultTimeout)
	}
	if !cfg.Logging.DebugMode {
		t.Error("expected env override to enable DebugMode")
	}
}

func TestGetExecutionTimeoutFallsBackOnInvalidDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Execution.DefaultTimeout = "not-a-duration"
	if got := cfg.GetExecutionTimeout(); got.Seconds() != 300 {
		t.Errorf("expected fallback of 300s, got %v", got)
	}
}

func TestValidateRejectsMissingHome(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Home = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected Validate to reject an empty Home")
	}
}

func TestValidateRejectsInvalidGateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GateLimits.NetworkScanner = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected Validate to reject a zero gate limit")
	}
}

func TestLayoutEnsureDirsCreatesKeysDirWithRestrictedPerms(t *testing.T) {
	home := t.TempDir()
	layout := Layout{Home: home}
	if err := layout.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs failed: %v", err)
	}

	info, err := os.Stat(layout.Keys())
	if err != nil {
		t.Fatalf("expected keys dir to exist: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0700 {
		t.Errorf("expected keys dir perm 0700, got %o", perm)
	}

	if _, err := os.Stat(layout.Wordlists()); err != nil {
		t.Errorf("expected wordlists dir to exist: %v", err)
	}
}
