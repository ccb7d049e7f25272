package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/adapter/cli"
	"github.com/taskflowhq/taskflow/internal/tasks/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [task-id]",
	Short: "Delete a task",
	Long: `Delete a task permanently. The task ID may be a full UUID or a
unique prefix as shown by taskflow task list.`,
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.DeleteTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := resolveTaskID(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}

		if err := app.DeleteTaskHandler.Handle(cmd.Context(), commands.DeleteTaskCommand{TaskID: id}); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		fmt.Printf("Task deleted: %s\n", id)
		return nil
	},
}
