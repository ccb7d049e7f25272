package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/internal/tasks/application/queries"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Review productivity over time",
	Long: `Aggregate your task history into weekly performance, a completion
trend over a trailing window, and how accurate your estimates have been.

Examples:
  taskflow stats
  taskflow stats --days 90`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.StatsHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		report, err := app.StatsHandler.Handle(cmd.Context(), queries.ProductivityStatsQuery{TrendDays: statsDays})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(report)
		}

		w := report.Weekly
		fmt.Println()
		fmt.Printf("  Last 7 days:       %d completed (%d minutes)\n", w.TotalCompleted, w.TotalTimeMinutes)
		fmt.Printf("  Daily average:     %.2f tasks, %.2f minutes\n", w.AvgDailyCompleted, w.AvgDailyTime)
		fmt.Printf("  Completion rate:   %.1f%%\n", w.CompletionRate)
		if w.MostProductiveDay != "" {
			fmt.Printf("  Best day:          %s\n", w.MostProductiveDay)
		}
		fmt.Println()
		fmt.Printf("  Last %d days:      %d of %d tasks done (%.1f%%)\n",
			report.TrendDays, report.TotalCompleted, report.TotalTasks, report.OverallCompletionRate)
		fmt.Printf("  Trend:             %s\n", report.TrendDirection)
		if report.Accuracy.TasksMeasured > 0 {
			fmt.Printf("  Estimate accuracy: %.1f%% over %d tasks\n",
				report.Accuracy.AvgAccuracyPct, report.Accuracy.TasksMeasured)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 0, "trend window in days (default: 30)")
	AddCommand(statsCmd)
}
