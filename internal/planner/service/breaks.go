package service

import "github.com/taskflowhq/taskflow/internal/planner/domain"

// BreakAdvisor suggests a recovery break for an allocated task. Advice is
// cosmetic: implementations must not influence which tasks get scheduled,
// so scheduling stays deterministic regardless of the advisor in use.
type BreakAdvisor interface {
	// SuggestBreak returns the recommended break in minutes after working
	// the given allocation.
	SuggestBreak(task domain.ScheduledTask) int

	// Suggestion returns a short human-readable tip for the break.
	Suggestion(task domain.ScheduledTask) string
}

// RotatingBreakAdvisor is the default advisor. Break length scales with the
// allocation and tips rotate deterministically by schedule order, so equal
// inputs always produce equal output.
type RotatingBreakAdvisor struct {
	tips []string
}

// NewRotatingBreakAdvisor creates the default break advisor.
func NewRotatingBreakAdvisor() *RotatingBreakAdvisor {
	return &RotatingBreakAdvisor{
		tips: []string{
			"Stand up and stretch for a couple of minutes.",
			"Get a glass of water before the next block.",
			"Step away from the screen and rest your eyes.",
			"Take a short walk to reset your focus.",
		},
	}
}

// SuggestBreak returns 5 minutes for short allocations, 10 for allocations
// over half an hour, and 15 for allocations over ninety minutes.
func (a *RotatingBreakAdvisor) SuggestBreak(task domain.ScheduledTask) int {
	switch {
	case task.AllocatedTime > 90:
		return 15
	case task.AllocatedTime > 30:
		return 10
	default:
		return 5
	}
}

// Suggestion returns a tip keyed to the task's position in the schedule.
func (a *RotatingBreakAdvisor) Suggestion(task domain.ScheduledTask) string {
	if len(a.tips) == 0 {
		return ""
	}
	idx := task.ScheduleOrder
	if idx < 1 {
		idx = 1
	}
	return a.tips[(idx-1)%len(a.tips)]
}

var _ BreakAdvisor = (*RotatingBreakAdvisor)(nil)
