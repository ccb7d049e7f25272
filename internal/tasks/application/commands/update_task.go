package commands

import (
	"context"

	"github.com/google/uuid"

	plannerdomain "github.com/taskflowhq/taskflow/internal/planner/domain"
	"github.com/taskflowhq/taskflow/internal/tasks/domain/task"
)

// UpdateTaskCommand updates the mutable fields of a task. Nil pointers
// leave the corresponding field untouched.
type UpdateTaskCommand struct {
	TaskID           uuid.UUID
	Title            *string
	Description      *string
	Priority         *string
	EstimatedMinutes *int
	Deadline         *string
}

// UpdateTaskHandler handles the UpdateTaskCommand.
type UpdateTaskHandler struct {
	taskRepo task.Repository
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(taskRepo task.Repository) *UpdateTaskHandler {
	return &UpdateTaskHandler{taskRepo: taskRepo}
}

// Handle executes the UpdateTaskCommand. An empty deadline string clears
// the deadline.
func (h *UpdateTaskHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) error {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	if cmd.Title != nil {
		if err := t.SetTitle(*cmd.Title); err != nil {
			return err
		}
	}

	if cmd.Description != nil {
		t.SetDescription(*cmd.Description)
	}

	if cmd.Priority != nil {
		priority, err := plannerdomain.ParsePriority(*cmd.Priority)
		if err != nil {
			return err
		}
		if err := t.SetPriority(priority); err != nil {
			return err
		}
	}

	if cmd.EstimatedMinutes != nil {
		if err := t.SetEstimatedTime(*cmd.EstimatedMinutes); err != nil {
			return err
		}
	}

	if cmd.Deadline != nil {
		if *cmd.Deadline == "" {
			t.SetDeadline(nil)
		} else {
			deadline, ok := plannerdomain.ParseDeadline(*cmd.Deadline)
			if !ok {
				return task.ErrInvalidDeadline
			}
			t.SetDeadline(&deadline)
		}
	}

	return h.taskRepo.Save(ctx, t)
}
