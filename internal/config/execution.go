package config

// ExecutionConfig configures the tool runner. Runner.Run does not consult
// AllowedBinaries, WorkingDirectory, AllowedEnvVars or MaxOutputBytes: it
// spawns any binary found on PATH, in the current directory, with the
// inherited environment, and does not truncate captured output.
type ExecutionConfig struct {
	// Allowed binaries the runner may spawn (allowlist)
	AllowedBinaries []string `yaml:"allowed_binaries" json:"allowed_binaries,omitempty"`

	// Default per-step timeout when a chain step declares none
	DefaultTimeout string `yaml:"default_timeout" json:"default_timeout,omitempty"`

	// Working directory for spawned processes
	WorkingDirectory string `yaml:"working_directory" json:"working_directory,omitempty"`

	// Environment variables passed through to spawned processes
	AllowedEnvVars []string `yaml:"allowed_env_vars" json:"allowed_env_vars,omitempty"`

	// Grace window before SIGKILL after a cancel/SIGTERM
	GraceWindow string `yaml:"grace_window" json:"grace_window,omitempty"`

	// Maximum captured output bytes per stream before truncation
	MaxOutputBytes int64 `yaml:"max_output_bytes" json:"max_output_bytes,omitempty"`
}
