package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"voidwave/internal/requirement"
)

var checkAction string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check an action's requirements without attempting any fix",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, ok := orch.CheckAction(context.Background(), checkAction)
		if !ok {
			return fmt.Errorf("unrecognized action %q", checkAction)
		}
		fmt.Println(result.Summary())
		printRequirementGroups(result)
		if !result.AllMet {
			return fmt.Errorf("not all requirements are met")
		}
		return nil
	},
}

var fixAction string

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Check an action's requirements and auto-fix what can be fixed",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, ok := orch.FixAction(context.Background(), fixAction)
		if !ok {
			return fmt.Errorf("unrecognized action %q", fixAction)
		}
		fmt.Println(result.Summary())
		printRequirementGroups(result)
		if !result.AllMet {
			return fmt.Errorf("manual action still required")
		}
		return nil
	},
}

func printRequirementGroups(result requirement.PreflightResult) {
	for _, r := range result.Fixable {
		fmt.Printf("  [fixable] %s - %s\n", r.Name, r.Description)
	}
	for _, r := range result.Manual {
		fmt.Printf("  [manual]  %s - %s\n", r.Name, r.Description)
	}
	for _, r := range result.Requirements {
		if !inSet(result.Fixable, r) && !inSet(result.Manual, r) && !inSet(result.Missing, r) {
			fmt.Printf("  [met]     %s - %s\n", r.Name, r.Description)
		}
	}
}

func inSet(reqs []requirement.Requirement, target requirement.Requirement) bool {
	for _, r := range reqs {
		if r.Name == target.Name {
			return true
		}
	}
	return false
}
