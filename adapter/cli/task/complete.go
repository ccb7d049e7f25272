package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/adapter/cli"
	"github.com/taskflowhq/taskflow/internal/tasks/application/commands"
	"github.com/taskflowhq/taskflow/internal/tasks/application/queries"
)

var actualMinutes int

var completeCmd = &cobra.Command{
	Use:   "complete [task-id]",
	Short: "Mark a task as completed",
	Long: `Mark a task as completed. The task ID may be a full UUID or a
unique prefix as shown by taskflow task list.

Examples:
  taskflow task complete 3f2a8c1b
  taskflow task complete 3f2a8c1b --actual 45`,
	Aliases: []string{"done"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CompleteTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := resolveTaskID(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}

		err = app.CompleteTaskHandler.Handle(cmd.Context(), commands.CompleteTaskCommand{
			TaskID:        id,
			ActualMinutes: actualMinutes,
		})
		if err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}

		fmt.Printf("Task completed: %s\n", id)
		return nil
	},
}

// resolveTaskID accepts a full UUID or a unique ID prefix.
func resolveTaskID(ctx context.Context, app *cli.App, raw string) (uuid.UUID, error) {
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}

	tasks, err := app.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{Filter: queries.FilterAll})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve task ID: %w", err)
	}

	var matches []uuid.UUID
	for _, t := range tasks {
		if strings.HasPrefix(t.ID().String(), strings.ToLower(raw)) {
			matches = append(matches, t.ID())
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return uuid.Nil, fmt.Errorf("no task matches %q", raw)
	default:
		return uuid.Nil, fmt.Errorf("%q matches %d tasks, use a longer prefix", raw, len(matches))
	}
}

func init() {
	completeCmd.Flags().IntVar(&actualMinutes, "actual", 0, "actual time spent in minutes (default: the estimate)")
}
