// Package queries holds the read-side application handlers for the tasks
// context.
package queries

import (
	"context"

	"github.com/taskflowhq/taskflow/internal/tasks/domain/task"
)

// TaskFilter selects which tasks a listing returns.
type TaskFilter string

const (
	FilterAll       TaskFilter = "all"
	FilterActive    TaskFilter = "active"
	FilterCompleted TaskFilter = "completed"
)

// ListTasksQuery requests a task listing.
type ListTasksQuery struct {
	Filter TaskFilter
}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo task.Repository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo task.Repository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle executes the ListTasksQuery. An unknown or empty filter lists
// everything.
func (h *ListTasksHandler) Handle(ctx context.Context, q ListTasksQuery) ([]*task.Task, error) {
	switch q.Filter {
	case FilterActive:
		return h.taskRepo.FindActive(ctx)
	case FilterCompleted:
		return h.taskRepo.FindCompleted(ctx)
	default:
		return h.taskRepo.FindAll(ctx)
	}
}
