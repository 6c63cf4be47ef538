package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	runTarget   string
	runCategory string
)

var runCmd = &cobra.Command{
	Use:   "run [chain-id]",
	Short: "Run a registered chain against a target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chainID := args[0]
		result, err := orch.RunChain(context.Background(), chainID, runTarget, runCategory)
		if err != nil {
			return err
		}

		fmt.Printf("chain %s: success=%v duration=%s\n", result.ChainID, result.Success, result.TotalDuration)
		for stepID, step := range result.Steps {
			fmt.Printf("  %s: %s (retries=%d)\n", stepID, step.Status, step.Retries)
			for _, e := range step.Errors {
				fmt.Printf("    error: %s\n", e)
			}
		}
		if !result.Success {
			return fmt.Errorf("chain %s did not complete successfully", chainID)
		}
		return nil
	},
}
