// Package commands holds the write-side application handlers for the
// tasks context.
package commands

import (
	"context"

	"github.com/google/uuid"

	plannerdomain "github.com/taskflowhq/taskflow/internal/planner/domain"
	"github.com/taskflowhq/taskflow/internal/tasks/domain/task"
)

// CreateTaskCommand contains the data needed to create a task.
type CreateTaskCommand struct {
	Title            string
	Description      string
	Priority         string
	EstimatedMinutes int
	Deadline         string
}

// CreateTaskResult contains the result of creating a task.
type CreateTaskResult struct {
	TaskID uuid.UUID
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	taskRepo task.Repository
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(taskRepo task.Repository) *CreateTaskHandler {
	return &CreateTaskHandler{taskRepo: taskRepo}
}

// Handle executes the CreateTaskCommand. The priority defaults to medium
// when omitted; an unparseable deadline is rejected rather than silently
// dropped, since the caller explicitly asked for one.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	priority := plannerdomain.PriorityMedium
	if cmd.Priority != "" {
		parsed, err := plannerdomain.ParsePriority(cmd.Priority)
		if err != nil {
			return nil, err
		}
		priority = parsed
	}

	t, err := task.NewTask(cmd.Title, cmd.EstimatedMinutes, priority)
	if err != nil {
		return nil, err
	}

	if cmd.Description != "" {
		t.SetDescription(cmd.Description)
	}

	if cmd.Deadline != "" {
		deadline, ok := plannerdomain.ParseDeadline(cmd.Deadline)
		if !ok {
			return nil, task.ErrInvalidDeadline
		}
		t.SetDeadline(&deadline)
	}

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	return &CreateTaskResult{TaskID: t.ID()}, nil
}
