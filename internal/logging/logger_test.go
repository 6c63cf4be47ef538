package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func resetState() {
	CloseAll()
	loggers = make(map[Category]*Logger)
	logsDir = ""
	homeDir = ""
	config = loggingConfig{}
}

func writeLoggingConfig(t *testing.T, home, content string) {
	t.Helper()
	configDir := filepath.Join(home, "config")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "logging.json"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write logging config: %v", err)
	}
}

func TestAllCategoriesLog(t *testing.T) {
	home := t.TempDir()
	writeLoggingConfig(t, home, `{
		"logging": {
			"level": "debug",
			"debug_mode": true,
			"categories": {
				"boot": true, "session": true, "preflight": true, "autofix": true,
				"toolspec": true, "runner": true, "chain": true, "executor": true,
				"events": true, "control": true, "gate": true, "orchestrator": true,
				"pathresolve": true
			}
		}
	}`)

	resetState()
	if err := Initialize(home); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if !IsDebugMode() {
		t.Fatal("expected debug mode to be enabled")
	}

	categories := []Category{
		CategoryBoot, CategorySession, CategoryPreflight, CategoryAutofix,
		CategoryToolSpec, CategoryRunner, CategoryChain, CategoryExecutor,
		CategoryEvents, CategoryControl, CategoryGate, CategoryOrchestrator,
		CategoryPathResolve,
	}

	for _, cat := range categories {
		if !IsCategoryEnabled(cat) {
			t.Errorf("category %s should be enabled", cat)
		}
		l := Get(cat)
		l.Info("info for %s", cat)
		l.Debug("debug for %s", cat)
		l.Warn("warn for %s", cat)
		l.Error("error for %s", cat)
	}

	Boot("convenience boot log")
	Session("convenience session log")
	Preflight("convenience preflight log")
	Autofix("convenience autofix log")
	ToolSpec("convenience toolspec log")
	Runner("convenience runner log")
	Chain("convenience chain log")
	Executor("convenience executor log")
	Events("convenience events log")
	Control("convenience control log")
	Gate("convenience gate log")
	Orchestrator("convenience orchestrator log")

	CloseAll()

	logsPath := filepath.Join(home, "logs")
	entries, err := os.ReadDir(logsPath)
	if err != nil {
		t.Fatalf("failed to read logs dir: %v", err)
	}

	for _, cat := range categories {
		found := false
		for _, entry := range entries {
			if strings.Contains(entry.Name(), string(cat)+".log") {
				found = true
				content, err := os.ReadFile(filepath.Join(logsPath, entry.Name()))
				if err != nil {
					t.Errorf("failed to read log file for %s: %v", cat, err)
					continue
				}
				if len(content) == 0 {
					t.Errorf("log file for %s is empty", cat)
				}
				break
			}
		}
		if !found {
			t.Errorf("no log file found for category: %s", cat)
		}
	}
}

func TestDebugModeDisabledProducesNoLogs(t *testing.T) {
	home := t.TempDir()
	writeLoggingConfig(t, home, `{
		"logging": {
			"level": "debug",
			"debug_mode": false,
			"categories": {"boot": true, "runner": true}
		}
	}`)

	resetState()
	if err := Initialize(home); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if IsDebugMode() {
		t.Fatal("expected debug mode to be disabled")
	}
	if IsCategoryEnabled(CategoryBoot) || IsCategoryEnabled(CategoryRunner) {
		t.Error("no category should be enabled when debug_mode is false")
	}

	Boot("should not be logged")
	Runner("should not be logged")
	Get(CategoryBoot).Error("should not be logged")

	CloseAll()

	logsPath := filepath.Join(home, "logs")
	if _, err := os.Stat(logsPath); err == nil {
		entries, _ := os.ReadDir(logsPath)
		if len(entries) > 0 {
			t.Errorf("expected no log files in production mode, found %d", len(entries))
		}
	}
}

func TestCategoryToggle(t *testing.T) {
	home := t.TempDir()
	writeLoggingConfig(t, home, `{
		"logging": {
			"level": "debug",
			"debug_mode": true,
			"categories": {"boot": true, "runner": true, "gate": false, "control": false}
		}
	}`)

	resetState()
	if err := Initialize(home); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if !IsCategoryEnabled(CategoryBoot) || !IsCategoryEnabled(CategoryRunner) {
		t.Error("boot and runner should be enabled")
	}
	if IsCategoryEnabled(CategoryGate) || IsCategoryEnabled(CategoryControl) {
		t.Error("gate and control should be disabled")
	}
	if !IsCategoryEnabled(CategoryChain) {
		t.Error("chain (not in config) should default to enabled when debug_mode is true")
	}

	Boot("should be logged")
	Runner("should be logged")
	Gate("should not be logged")
	Control("should not be logged")
	Chain("should be logged (default enabled)")

	CloseAll()

	entries, _ := os.ReadDir(filepath.Join(home, "logs"))
	var hasBoot, hasGate bool
	for _, e := range entries {
		if strings.Contains(e.Name(), "boot") {
			hasBoot = true
		}
		if strings.Contains(e.Name(), "gate") {
			hasGate = true
		}
	}
	if !hasBoot {
		t.Error("expected boot log file")
	}
	if hasGate {
		t.Error("should not have a gate log file (disabled)")
	}
}

func TestTimerLogging(t *testing.T) {
	home := t.TempDir()
	writeLoggingConfig(t, home, `{"logging": {"level": "debug", "debug_mode": true}}`)

	resetState()
	if err := Initialize(home); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	timer := StartTimer(CategoryRunner, "test-operation")
	time.Sleep(time.Millisecond)
	elapsed := timer.Stop()
	if elapsed <= 0 {
		t.Error("timer should have recorded a non-zero duration")
	}

	CloseAll()
}
