package service

import (
	"log/slog"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

// MinUsableChunk is the smallest allocation (minutes) worth scheduling.
// Remainders below it are skipped rather than handed out as micro-blocks.
const MinUsableChunk = 15

// Allocator greedily consumes a sorted task sequence against a time budget.
type Allocator struct {
	minChunk int
	advisor  BreakAdvisor
	logger   *slog.Logger
}

// NewAllocator creates an allocator. A nil advisor falls back to the
// default rotating advisor; a nil logger discards debug output.
func NewAllocator(minChunk int, advisor BreakAdvisor, logger *slog.Logger) *Allocator {
	if minChunk <= 0 {
		minChunk = MinUsableChunk
	}
	if advisor == nil {
		advisor = NewRotatingBreakAdvisor()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Allocator{minChunk: minChunk, advisor: advisor, logger: logger}
}

// Allocate walks the sorted sequence while budget remains:
//
//  1. A task fitting entirely within the remaining budget is allocated in
//     full.
//  2. Otherwise, if the remainder is at least the minimum usable chunk, the
//     task gets a partial allocation of the whole remainder.
//  3. Otherwise the task is skipped without consuming budget, so a later,
//     shorter task can still fit.
//
// A second pass backfills a leftover remainder of at least the minimum
// chunk into one not-yet-scheduled task. At most one partial allocation
// happens per invocation. Non-positive budgets and empty inputs produce an
// empty schedule with every task unscheduled.
func (a *Allocator) Allocate(sorted []domain.Task, budget int) (domain.Schedule, []domain.Task) {
	if len(sorted) == 0 || budget <= 0 {
		unscheduled := make([]domain.Task, len(sorted))
		copy(unscheduled, sorted)
		return domain.Schedule{}, unscheduled
	}

	scheduled := make([]domain.ScheduledTask, 0, len(sorted))
	var unscheduled []domain.Task
	remaining := budget
	partialUsed := false

	for _, task := range sorted {
		if remaining <= 0 {
			unscheduled = append(unscheduled, task)
			continue
		}

		switch {
		case task.EstimatedTime <= remaining:
			scheduled = append(scheduled, a.grant(task, task.EstimatedTime, len(scheduled)+1))
			remaining -= task.EstimatedTime
		case remaining >= a.minChunk && !partialUsed:
			scheduled = append(scheduled, a.grant(task, remaining, len(scheduled)+1))
			remaining = 0
			partialUsed = true
		default:
			unscheduled = append(unscheduled, task)
		}
	}

	// Backfill: one partial allocation from the leftover, if it is still
	// worth a usable chunk.
	if remaining >= a.minChunk && !partialUsed && len(unscheduled) > 0 {
		task := unscheduled[0]
		scheduled = append(scheduled, a.grant(task, remaining, len(scheduled)+1))
		unscheduled = unscheduled[1:]
		remaining = 0
	}

	a.logger.Debug("allocation complete",
		"budget", budget,
		"scheduled", len(scheduled),
		"unscheduled", len(unscheduled),
		"leftover", remaining,
	)

	return domain.Schedule{Tasks: scheduled}, unscheduled
}

func (a *Allocator) grant(task domain.Task, minutes, order int) domain.ScheduledTask {
	st := domain.NewScheduledTask(task, minutes)
	st.ScheduleOrder = order
	st.SuggestedBreak = a.advisor.SuggestBreak(st)
	return st
}
