package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/adapter/cli"
	"github.com/taskflowhq/taskflow/internal/tasks/application/queries"
)

var (
	showAll       bool
	showCompleted bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks. Active tasks are shown by default.

Examples:
  taskflow task list               # active tasks
  taskflow task list --all         # everything
  taskflow task list --completed   # completed tasks`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListTasksHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		filter := queries.FilterActive
		if showAll {
			filter = queries.FilterAll
		} else if showCompleted {
			filter = queries.FilterCompleted
		}

		tasks, err := app.ListTasksHandler.Handle(cmd.Context(), queries.ListTasksQuery{Filter: filter})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		fmt.Printf("Tasks (%d):\n", len(tasks))
		fmt.Println(strings.Repeat("-", 60))

		today := time.Now()
		for _, t := range tasks {
			status := " "
			if t.IsCompleted() {
				status = "x"
			}

			line := fmt.Sprintf("[%s] %s  %s (%dm)", status, shortID(t.ID().String()), t.Title(), t.EstimatedTime())
			if d := t.Deadline(); d != nil && !d.IsZero() {
				days := d.DaysUntil(today)
				switch {
				case t.IsCompleted():
					line += fmt.Sprintf("  due %s", d.String())
				case days < 0:
					line += fmt.Sprintf("  OVERDUE by %dd", -days)
				case days == 0:
					line += "  due today"
				default:
					line += fmt.Sprintf("  due in %dd", days)
				}
			}
			fmt.Printf("  %s  [%s]\n", line, t.Priority().String())
		}

		return nil
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	listCmd.Flags().BoolVarP(&showAll, "all", "a", false, "include completed tasks")
	listCmd.Flags().BoolVar(&showCompleted, "completed", false, "show only completed tasks")
}
