// Package config loads and validates VOIDWAVE's YAML configuration, with
// environment-variable overrides layered on top, following the same
// load/override/validate shape used throughout the codebase this was
// adapted from.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"voidwave/internal/logging"
)

// Config holds all VOIDWAVE configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Home is the user-scoped home directory (see §6 filesystem layout).
	Home string `yaml:"home"`

	Execution ExecutionConfig `yaml:"execution"`
	GateLimits GateLimits     `yaml:"gate_limits" json:"gate_limits"`
	Logging   LoggingConfig  `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home := defaultHome()
	return &Config{
		Name:    "voidwave",
		Version: "0.1.0",
		Home:    home,

		Execution: ExecutionConfig{
			AllowedBinaries: []string{
				"nmap", "masscan", "rustscan",
				"hashcat", "john",
				"aircrack-ng", "airodump-ng", "aireplay-ng", "hcxdumptool", "hcxpcapngtool",
				"ffuf", "gobuster",
				"subfinder", "amass",
				"nuclei",
				"whois",
			},
			DefaultTimeout:   "300s",
			WorkingDirectory: ".",
			AllowedEnvVars:   []string{"PATH", "HOME"},
			GraceWindow:      "5s",
			MaxOutputBytes:   10 << 20, // 10MiB
		},

		GateLimits: DefaultGateLimits(),

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			DebugMode: false,
		},
	}
}

func defaultHome() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".voidwave")
	}
	return ".voidwave"
}

// Load loads configuration from a YAML file, falling back to defaults
// if the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	logging.BootDebug("loading config from: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Boot("config file not found, using defaults: %s", path)
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		logging.BootError("failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		logging.BootError("failed to parse config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	logging.Boot("config loaded: home=%s", cfg.Home)
	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides layers environment variables over file/default config.
func (c *Config) applyEnvOverrides() {
	if home := os.Getenv("VOIDWAVE_HOME"); home != "" {
		c.Home = home
	}
	if timeout := os.Getenv("VOIDWAVE_DEFAULT_TIMEOUT"); timeout != "" {
		c.Execution.DefaultTimeout = timeout
	}
	if v := os.Getenv("VOIDWAVE_DEBUG"); v == "1" || v == "true" {
		c.Logging.DebugMode = true
	}
}

// GetExecutionTimeout returns the default execution timeout as a duration.
func (c *Config) GetExecutionTimeout() time.Duration {
	d, err := time.ParseDuration(c.Execution.DefaultTimeout)
	if err != nil {
		return 300 * time.Second
	}
	return d
}

// GetGraceWindow returns the cancel grace window as a duration.
func (c *Config) GetGraceWindow() time.Duration {
	d, err := time.ParseDuration(c.Execution.GraceWindow)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("home directory not configured")
	}
	if err := ValidateGateLimits(c.GateLimits); err != nil {
		return err
	}
	if c.Execution.DefaultTimeout == "" {
		return fmt.Errorf("execution.default_timeout must be set")
	}
	if _, err := time.ParseDuration(c.Execution.DefaultTimeout); err != nil {
		return fmt.Errorf("execution.default_timeout invalid: %w", err)
	}
	return nil
}

// Layout describes the persistent filesystem layout under Home (§6).
type Layout struct {
	Home string
}

// NewLayout derives the full directory layout from the config's home dir.
func (c *Config) NewLayout() Layout {
	return Layout{Home: c.Home}
}

func (l Layout) ConfigDir() string   { return filepath.Join(l.Home, "config") }
func (l Layout) DataDir() string     { return filepath.Join(l.Home, "data") }
func (l Layout) Wordlists() string   { return filepath.Join(l.DataDir(), "wordlists") }
func (l Layout) Portals() string     { return filepath.Join(l.DataDir(), "portals") }
func (l Layout) Certs() string       { return filepath.Join(l.DataDir(), "certs") }
func (l Layout) Templates() string   { return filepath.Join(l.DataDir(), "templates") }
func (l Layout) Sessions() string    { return filepath.Join(l.DataDir(), "sessions") }
func (l Layout) Keys() string        { return filepath.Join(l.DataDir(), "keys") }
func (l Layout) LogsDir() string     { return filepath.Join(l.Home, "logs") }
func (l Layout) OutputDir() string   { return filepath.Join(l.Home, "output") }
func (l Layout) CapturesWifi() string  { return filepath.Join(l.OutputDir(), "captures", "wifi") }
func (l Layout) CapturesWired() string { return filepath.Join(l.OutputDir(), "captures", "wired") }
func (l Layout) ScansDir(tool string) string {
	return filepath.Join(l.OutputDir(), "scans", tool)
}
func (l Layout) ReportsDir(sessionID string) string {
	return filepath.Join(l.OutputDir(), "reports", "session_"+sessionID)
}
func (l Layout) Loot() string   { return filepath.Join(l.OutputDir(), "loot") }
func (l Layout) Exports() string { return filepath.Join(l.OutputDir(), "exports") }
func (l Layout) CacheTemp() string { return filepath.Join(l.Home, "cache", "temp") }
func (l Layout) DBPath(name string) string { return filepath.Join(l.DataDir(), name) }

// EnsureDirs creates every directory in the layout (idempotent).
func (l Layout) EnsureDirs() error {
	dirs := []string{
		l.ConfigDir(), l.Wordlists(), l.Portals(), l.Certs(), l.Templates(),
		l.Sessions(), l.LogsDir(), l.CapturesWifi(), l.CapturesWired(),
		l.Loot(), l.Exports(), l.CacheTemp(),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", d, err)
		}
	}
	// keys dir is sensitive: 0700
	if err := os.MkdirAll(l.Keys(), 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", l.Keys(), err)
	}
	return nil
}
