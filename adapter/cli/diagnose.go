package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
	"github.com/taskflowhq/taskflow/internal/tasks/application/queries"
)

var diagnoseBudget int

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Analyze schedule quality",
	Long: `Schedule active tasks into the budget and report how good the
result is: time utilization, priority-weighted score, and a quality
rating from poor to excellent.

Examples:
  taskflow diagnose
  taskflow diagnose -t 120`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		tasks, err := app.ActivePlannerTasks(cmd.Context())
		if err != nil {
			return err
		}

		budget := diagnoseBudget
		if budget == 0 {
			budget = app.Config.DailyBudgetMinutes
		}

		schedule, unscheduled := app.Planner.GenerateSchedule(tasks, budget)
		diag := app.Planner.Diagnostics(schedule, budget)
		estimate := app.Planner.EstimateCompletion(tasks, app.Config.EfficiencyFactor)
		stats, err := completionStats(cmd.Context(), app)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(map[string]any{
				"diagnostics": diag,
				"estimate":    estimate,
				"completed":   stats,
				"schedule":    schedule.Tasks,
				"unscheduled": unscheduled,
			})
		}

		fmt.Println()
		fmt.Printf("  Time utilization:  %.1f%%\n", diag.TimeUtilization)
		fmt.Printf("  Priority score:    %.1f\n", diag.PriorityScore)
		fmt.Printf("  Quality rating:    %s\n", diag.QualityRating)
		fmt.Printf("  Scheduled tasks:   %d (%d minutes)\n", diag.ScheduledTasks, diag.TotalAllocated)
		fmt.Printf("  Avg completion:    %.1f%%\n", diag.AvgCompletionPct)
		fmt.Println()
		fmt.Printf("  Backlog:           %d minutes (%d adjusted)\n", estimate.TotalTime, estimate.AdjustedTime)
		fmt.Printf("  Days needed:       %.1f\n", estimate.DaysNeeded)
		if estimate.CompletionDate != "" {
			fmt.Printf("  Estimated done by: %s\n", estimate.CompletionDate)
		}
		if stats.TotalCompleted > 0 {
			fmt.Println()
			fmt.Printf("  Completed tasks:   %d (%d minutes)\n", stats.TotalCompleted, stats.TotalTimeSpent)
			fmt.Printf("  Avg time per task: %.1f minutes\n", stats.AvgCompletionTime)
			fmt.Printf("  Productivity:      %.1f\n", stats.ProductivityScore)
		}
		printUnscheduled(unscheduled)
		fmt.Println()
		return nil
	},
}

// completionStats aggregates the completed tasks in the store.
func completionStats(ctx context.Context, app *App) (domain.CompletionStats, error) {
	stored, err := app.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{Filter: queries.FilterCompleted})
	if err != nil {
		return domain.CompletionStats{}, fmt.Errorf("failed to load completed tasks: %w", err)
	}

	completed := make([]domain.Task, 0, len(stored))
	for _, t := range stored {
		completed = append(completed, t.ToPlannerTask())
	}
	return app.Planner.CompletionStats(completed), nil
}

func init() {
	diagnoseCmd.Flags().IntVarP(&diagnoseBudget, "time", "t", 0, "available time in minutes (default: configured daily budget)")
	AddCommand(diagnoseCmd)
}
