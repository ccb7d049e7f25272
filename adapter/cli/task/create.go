package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/adapter/cli"
	"github.com/taskflowhq/taskflow/internal/tasks/application/commands"
)

var (
	priority    string
	estimate    int
	description string
	deadline    string
)

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new task",
	Long: `Create a new task with a title and optional properties.

Examples:
  taskflow task create "Complete project report"
  taskflow task create "Review PR" -p high -e 30
  taskflow task create "Write docs" --priority medium --estimate 60 --deadline 2025-09-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		result, err := app.CreateTaskHandler.Handle(cmd.Context(), commands.CreateTaskCommand{
			Title:            args[0],
			Description:      description,
			Priority:         priority,
			EstimatedMinutes: estimate,
			Deadline:         deadline,
		})
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		fmt.Printf("Task created: %s\n", result.TaskID)
		fmt.Printf("  title: %s\n", args[0])
		if priority != "" {
			fmt.Printf("  priority: %s\n", priority)
		}
		if estimate > 0 {
			fmt.Printf("  estimate: %d minutes\n", estimate)
		}
		if deadline != "" {
			fmt.Printf("  deadline: %s\n", deadline)
		}

		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&priority, "priority", "p", "", "task priority (low, medium, high)")
	createCmd.Flags().IntVarP(&estimate, "estimate", "e", 0, "estimated duration in minutes")
	createCmd.Flags().StringVar(&description, "description", "", "task description")
	createCmd.Flags().StringVar(&deadline, "deadline", "", "deadline (YYYY-MM-DD)")
}
