package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"voidwave/internal/requirement"
)

var listChainsCmd = &cobra.Command{
	Use:   "list-chains",
	Short: "List every registered chain definition",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := orch.Chains.ListIDs()
		sort.Strings(ids)
		for _, id := range ids {
			def, _ := orch.Chains.Get(id)
			fmt.Printf("%s\t%s\t%d step(s)\n", def.ID, def.Name, len(def.Steps))
		}
		return nil
	},
}

var listToolsCmd = &cobra.Command{
	Use:   "list-tools",
	Short: "List every registered tool spec",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := orch.Tools.Names()
		sort.Strings(names)
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	},
}

var listActionsCmd = &cobra.Command{
	Use:   "list-actions",
	Short: "List every recognized preflight action name",
	RunE: func(cmd *cobra.Command, args []string) error {
		actions := requirement.ListActions(orch.Session)
		sort.Strings(actions)
		for _, a := range actions {
			fmt.Println(a)
		}
		return nil
	},
}
