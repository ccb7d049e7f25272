package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskflowhq/taskflow/internal/tasks/domain/task"
)

// CompleteTaskCommand marks a task as done.
type CompleteTaskCommand struct {
	TaskID        uuid.UUID
	ActualMinutes int
}

// CompleteTaskHandler handles the CompleteTaskCommand.
type CompleteTaskHandler struct {
	taskRepo task.Repository
}

// NewCompleteTaskHandler creates a new CompleteTaskHandler.
func NewCompleteTaskHandler(taskRepo task.Repository) *CompleteTaskHandler {
	return &CompleteTaskHandler{taskRepo: taskRepo}
}

// Handle executes the CompleteTaskCommand.
func (h *CompleteTaskHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) error {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	if err := t.Complete(cmd.ActualMinutes); err != nil {
		return err
	}

	return h.taskRepo.Save(ctx, t)
}
