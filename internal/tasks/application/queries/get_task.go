package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskflowhq/taskflow/internal/tasks/domain/task"
)

// GetTaskQuery requests a single task by ID.
type GetTaskQuery struct {
	TaskID uuid.UUID
}

// GetTaskHandler handles the GetTaskQuery.
type GetTaskHandler struct {
	taskRepo task.Repository
}

// NewGetTaskHandler creates a new GetTaskHandler.
func NewGetTaskHandler(taskRepo task.Repository) *GetTaskHandler {
	return &GetTaskHandler{taskRepo: taskRepo}
}

// Handle executes the GetTaskQuery.
func (h *GetTaskHandler) Handle(ctx context.Context, q GetTaskQuery) (*task.Task, error) {
	return h.taskRepo.FindByID(ctx, q.TaskID)
}
