// Package main implements the voidwave CLI: a thin cobra front end over
// internal/orchestrator, grounded on cmd/nerd/main.go's rootCmd/
// PersistentPreRunE/PersistentPostRun pattern (zap for CLI-facing logging,
// internal/logging for the on-disk category log files).
//
// # File Index
//
//   - main.go    - entry point, rootCmd, global flags, logger lifecycle
//   - check.go   - checkCmd, fixCmd
//   - run.go     - runCmd (run a registered chain against a target)
//   - list.go    - listChainsCmd, listToolsCmd, listActionsCmd
//   - stop.go    - stopAllCmd
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"voidwave/internal/config"
	"voidwave/internal/logging"
	"voidwave/internal/orchestrator"
)

var (
	verbose     bool
	home        string
	sessionName string

	logger *zap.Logger
	orch   *orchestrator.Orchestrator
)

var rootCmd = &cobra.Command{
	Use:   "voidwave",
	Short: "VOIDWAVE - offensive security automation engine",
	Long: `VOIDWAVE drives preflight checks, auto-fix remediation, and
declarative attack chains against a single selected target.

It never decides what to attack; it resolves whether the tools and session
state an action needs are in place, auto-fixes what it can, and executes
the tool invocations and multi-step chains an operator requests.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg := config.DefaultConfig()
		if envHome := os.Getenv("VOIDWAVE_HOME"); envHome != "" {
			cfg.Home = envHome
		}
		if home != "" {
			cfg.Home = home
		}
		if err := logging.Initialize(cfg.Home); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to initialize file logging: %v\n", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		o, err := orchestrator.New(cfg, sessionName)
		if err != nil {
			return fmt.Errorf("failed to build orchestrator: %w", err)
		}
		orch = o
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&home, "home", "", "VOIDWAVE home directory (default: $VOIDWAVE_HOME or ~/.voidwave)")
	rootCmd.PersistentFlags().StringVar(&sessionName, "session", "default", "engagement session name")

	runCmd.Flags().StringVar(&runTarget, "target", "", "target (BSSID/host/domain) for the chain")
	runCmd.Flags().StringVar(&runCategory, "category", "default", "concurrency gate category to run under")
	runCmd.MarkFlagRequired("target")

	checkCmd.Flags().StringVar(&checkAction, "action", "", "action name to check requirements for")
	checkCmd.MarkFlagRequired("action")

	fixCmd.Flags().StringVar(&fixAction, "action", "", "action name to check and auto-fix requirements for")
	fixCmd.MarkFlagRequired("action")

	rootCmd.AddCommand(
		checkCmd,
		fixCmd,
		runCmd,
		listChainsCmd,
		listToolsCmd,
		listActionsCmd,
		stopAllCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
