// Package task holds the persisted task aggregate and its repository
// contract.
package task

import (
	"errors"
	"strings"
	"time"

	plannerdomain "github.com/taskflowhq/taskflow/internal/planner/domain"
	"github.com/taskflowhq/taskflow/internal/shared/domain"
)

var (
	ErrEmptyTitle          = errors.New("task title cannot be empty")
	ErrInvalidEstimate     = errors.New("estimated minutes must be positive")
	ErrTaskAlreadyComplete = errors.New("task is already completed")
	ErrTaskNotComplete     = errors.New("task is not completed")
	ErrInvalidDeadline     = errors.New("deadline must be a YYYY-MM-DD date")
)

// Task represents a unit of work tracked by the application.
type Task struct {
	domain.BaseEntity
	title         string
	description   string
	priority      plannerdomain.Priority
	estimatedTime int
	actualTime    int
	deadline      *plannerdomain.Deadline
	completed     bool
	completedAt   *time.Time
}

// NewTask creates a new task with the given title and estimate. A
// non-positive estimate falls back to the engine default.
func NewTask(title string, estimatedMinutes int, priority plannerdomain.Priority) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if estimatedMinutes <= 0 {
		estimatedMinutes = plannerdomain.DefaultEstimatedMinutes
	}
	if !priority.IsValid() {
		priority = plannerdomain.PriorityMedium
	}

	return &Task{
		BaseEntity:    domain.NewBaseEntity(),
		title:         title,
		priority:      priority,
		estimatedTime: estimatedMinutes,
	}, nil
}

// Getters

func (t *Task) Title() string                     { return t.title }
func (t *Task) Description() string               { return t.description }
func (t *Task) Priority() plannerdomain.Priority  { return t.priority }
func (t *Task) EstimatedTime() int                { return t.estimatedTime }
func (t *Task) ActualTime() int                   { return t.actualTime }
func (t *Task) Deadline() *plannerdomain.Deadline { return t.deadline }
func (t *Task) IsCompleted() bool                 { return t.completed }
func (t *Task) CompletedAt() *time.Time           { return t.completedAt }

// SetTitle updates the task title.
func (t *Task) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	t.title = title
	t.Touch()
	return nil
}

// SetDescription updates the task description.
func (t *Task) SetDescription(description string) {
	t.description = strings.TrimSpace(description)
	t.Touch()
}

// SetPriority updates the task priority. Invalid tiers are rejected.
func (t *Task) SetPriority(priority plannerdomain.Priority) error {
	if !priority.IsValid() {
		return plannerdomain.ErrInvalidPriority
	}
	t.priority = priority
	t.Touch()
	return nil
}

// SetEstimatedTime updates the estimate in minutes.
func (t *Task) SetEstimatedTime(minutes int) error {
	if minutes <= 0 {
		return ErrInvalidEstimate
	}
	t.estimatedTime = minutes
	t.Touch()
	return nil
}

// SetDeadline updates the deadline. A nil or zero deadline clears it.
func (t *Task) SetDeadline(deadline *plannerdomain.Deadline) {
	if deadline != nil && deadline.IsZero() {
		deadline = nil
	}
	t.deadline = deadline
	t.Touch()
}

// Complete marks the task as completed, recording the actual minutes spent.
// A non-positive actual falls back to the estimate.
func (t *Task) Complete(actualMinutes int) error {
	if t.completed {
		return ErrTaskAlreadyComplete
	}
	if actualMinutes <= 0 {
		actualMinutes = t.estimatedTime
	}

	now := time.Now().UTC()
	t.completed = true
	t.completedAt = &now
	t.actualTime = actualMinutes
	t.Touch()
	return nil
}

// Reopen returns a completed task to the active list.
func (t *Task) Reopen() error {
	if !t.completed {
		return ErrTaskNotComplete
	}
	t.completed = false
	t.completedAt = nil
	t.actualTime = 0
	t.Touch()
	return nil
}

// ToPlannerTask converts the aggregate into the flat record the scheduling
// engine consumes.
func (t *Task) ToPlannerTask() plannerdomain.Task {
	return plannerdomain.Task{
		ID:            t.ID().String(),
		Title:         t.title,
		EstimatedTime: t.estimatedTime,
		ActualTime:    t.actualTime,
		Priority:      t.priority,
		Deadline:      t.deadline,
		Completed:     t.completed,
	}
}

// Rehydrate recreates a task from persisted state. Events and validation are
// skipped; storage is trusted.
func Rehydrate(
	entity domain.BaseEntity,
	title, description string,
	priority plannerdomain.Priority,
	estimatedTime, actualTime int,
	deadline *plannerdomain.Deadline,
	completed bool,
	completedAt *time.Time,
) *Task {
	return &Task{
		BaseEntity:    entity,
		title:         title,
		description:   description,
		priority:      priority,
		estimatedTime: estimatedTime,
		actualTime:    actualTime,
		deadline:      deadline,
		completed:     completed,
		completedAt:   completedAt,
	}
}
