package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Get workload recommendations",
	Long: `Inspect the full task list, completed work included, and suggest
what to act on: overdue items, heavy workloads, tasks worth splitting,
and how your completion rate is trending.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		tasks, err := app.AllPlannerTasks(cmd.Context())
		if err != nil {
			return err
		}

		recommendations := app.Planner.Recommendations(tasks)

		if jsonOutput {
			return printJSON(map[string]any{"recommendations": recommendations})
		}

		fmt.Println()
		for _, r := range recommendations {
			fmt.Printf("  - %s\n", r)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	AddCommand(recommendCmd)
}
