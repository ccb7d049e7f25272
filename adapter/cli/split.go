package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

var splitCmd = &cobra.Command{
	Use:   "split [max-minutes]",
	Short: "Split long tasks into sub-sessions",
	Long: `Split every active task longer than the cap into evenly sized
sub-sessions. Sub-sessions after the first drop one priority step so the
first chunk keeps its place in the queue.

Examples:
  taskflow split        # use the configured cap
  taskflow split 60     # cap sub-sessions at 60 minutes`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		maxMinutes := app.Config.MaxSplitMinutes
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil || parsed <= 0 {
				return fmt.Errorf("invalid max minutes %q", args[0])
			}
			maxMinutes = parsed
		}

		tasks, err := app.ActivePlannerTasks(cmd.Context())
		if err != nil {
			return err
		}

		var result []domain.Task
		for _, t := range tasks {
			result = append(result, app.Planner.Split(t, maxMinutes)...)
		}

		if jsonOutput {
			return printJSON(map[string]any{"tasks": result})
		}

		if len(result) == 0 {
			fmt.Println("No active tasks to split.")
			return nil
		}

		fmt.Println()
		for _, t := range result {
			fmt.Printf("  %-44s %4dm  %s\n", truncate(t.Title, 44), t.EstimatedTime, t.Priority.String())
		}
		fmt.Println()
		return nil
	},
}

func init() {
	AddCommand(splitCmd)
}
