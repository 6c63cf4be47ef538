package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stopAllCmd = &cobra.Command{
	Use:   "stop-all",
	Short: "Cancel every in-flight tool/chain run",
	RunE: func(cmd *cobra.Command, args []string) error {
		result := orch.Shutdown()
		fmt.Printf("cancelled %d running process(es)\n", result.Cancelled)
		for _, e := range result.Errors {
			fmt.Println("error:", e)
		}
		return nil
	},
}
