package cli

import (
	"context"
	"fmt"

	plannerdomain "github.com/taskflowhq/taskflow/internal/planner/domain"
	"github.com/taskflowhq/taskflow/internal/planner/service"
	"github.com/taskflowhq/taskflow/internal/tasks/application/commands"
	"github.com/taskflowhq/taskflow/internal/tasks/application/queries"
	"github.com/taskflowhq/taskflow/pkg/config"
)

// App holds the CLI application dependencies.
type App struct {
	Planner *service.Planner
	Config  *config.Config

	// Task command handlers
	CreateTaskHandler   *commands.CreateTaskHandler
	UpdateTaskHandler   *commands.UpdateTaskHandler
	CompleteTaskHandler *commands.CompleteTaskHandler
	DeleteTaskHandler   *commands.DeleteTaskHandler

	// Task query handlers
	ListTasksHandler *queries.ListTasksHandler
	GetTaskHandler   *queries.GetTaskHandler
	StatsHandler     *queries.ProductivityStatsHandler

	// StartServer runs the HTTP API until the context is cancelled.
	StartServer func(ctx context.Context) error
}

var app *App

// SetApp sets the global CLI application.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application.
func GetApp() *App {
	return app
}

// ActivePlannerTasks loads the active tasks from the store as flat engine
// records.
func (a *App) ActivePlannerTasks(ctx context.Context) ([]plannerdomain.Task, error) {
	return a.plannerTasks(ctx, queries.FilterActive)
}

// AllPlannerTasks loads every task, active and completed, as flat engine
// records.
func (a *App) AllPlannerTasks(ctx context.Context) ([]plannerdomain.Task, error) {
	return a.plannerTasks(ctx, queries.FilterAll)
}

func (a *App) plannerTasks(ctx context.Context, filter queries.TaskFilter) ([]plannerdomain.Task, error) {
	if a.ListTasksHandler == nil {
		return nil, fmt.Errorf("application not initialized - database connection required")
	}

	stored, err := a.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{Filter: filter})
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	tasks := make([]plannerdomain.Task, 0, len(stored))
	for _, t := range stored {
		tasks = append(tasks, t.ToPlannerTask())
	}
	return tasks, nil
}
