package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

var scheduleBudget int

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule active tasks into a time budget",
	Long: `Schedule your active tasks into the minutes you have available.

Tasks are scored by priority, deadline urgency, and duration, then packed
greedily into the budget. At most one task is scheduled partially.

Examples:
  taskflow schedule            # use the configured daily budget
  taskflow schedule -t 90      # fit tasks into 90 minutes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		tasks, err := app.ActivePlannerTasks(cmd.Context())
		if err != nil {
			return err
		}

		budget := scheduleBudget
		if budget == 0 {
			budget = app.Config.DailyBudgetMinutes
		}

		schedule, unscheduled := app.Planner.GenerateSchedule(tasks, budget)

		if jsonOutput {
			return printJSON(map[string]any{
				"schedule":    schedule.Tasks,
				"unscheduled": unscheduled,
				"total_time":  schedule.TotalAllocated(),
			})
		}

		fmt.Printf("\n  SCHEDULE (%d of %d minutes)\n\n", schedule.TotalAllocated(), budget)
		printScheduleTable(schedule.Tasks)
		printUnscheduled(unscheduled)
		for _, st := range schedule.Tasks {
			if st.SuggestedBreak > 0 {
				fmt.Printf("\n  After %q: %s\n", st.Title, app.Planner.BreakSuggestion(st))
				break
			}
		}
		fmt.Println()
		return nil
	},
}

func init() {
	scheduleCmd.Flags().IntVarP(&scheduleBudget, "time", "t", 0, "available time in minutes (default: configured daily budget)")
	AddCommand(scheduleCmd)
}

// unscheduledTitles is used by sibling commands to summarize leftovers.
func unscheduledTitles(tasks []domain.Task) []string {
	titles := make([]string, 0, len(tasks))
	for _, t := range tasks {
		titles = append(titles, t.Title)
	}
	return titles
}
