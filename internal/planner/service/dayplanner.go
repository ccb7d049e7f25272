package service

import (
	"time"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

// DayPlanner distributes tasks across a sequence of named time slots by
// repeatedly invoking the sorter and allocator.
type DayPlanner struct {
	sorter    *Sorter
	allocator *Allocator
}

// NewDayPlanner creates a multi-slot planner.
func NewDayPlanner(sorter *Sorter, allocator *Allocator) *DayPlanner {
	return &DayPlanner{sorter: sorter, allocator: allocator}
}

// Plan fills each slot in order from the tasks not yet claimed by an
// earlier slot. A task scheduled in a slot, fully or partially, is claimed
// for this plan and is not re-offered to later slots; its remainder is not
// re-queued. Tasks untouched after the last slot land in the Unscheduled
// bucket. An empty slot list falls back to the default slot set.
func (p *DayPlanner) Plan(tasks []domain.Task, slots []domain.Slot, today time.Time) domain.DayPlan {
	if len(slots) == 0 {
		slots = domain.DefaultSlots()
	}

	plan := domain.DayPlan{Slots: make([]domain.SlotSchedule, 0, len(slots))}
	pool := domain.SanitizeTasks(tasks)

	for _, slot := range slots {
		if len(pool) == 0 {
			plan.Slots = append(plan.Slots, domain.SlotSchedule{Slot: slot})
			continue
		}

		sorted := p.sorter.Sort(pool, today)
		schedule, unscheduled := p.allocator.Allocate(sorted, slot.Minutes)
		plan.Slots = append(plan.Slots, domain.SlotSchedule{Slot: slot, Schedule: schedule})
		pool = unscheduled
	}

	plan.Unscheduled = pool
	return plan
}
