package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

func newTestDayPlanner() *DayPlanner {
	sorter := newTestSorter()
	allocator := NewAllocator(MinUsableChunk, NewRotatingBreakAdvisor(), nil)
	return NewDayPlanner(sorter, allocator)
}

func TestDayPlanner_Plan(t *testing.T) {
	planner := newTestDayPlanner()
	today := date("2025-08-03")

	t.Run("fills slots in order with leftover tasks flowing forward", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "alpha", EstimatedTime: 60, Priority: domain.PriorityHigh},
			{Title: "beta", EstimatedTime: 60, Priority: domain.PriorityMedium},
			{Title: "gamma", EstimatedTime: 60, Priority: domain.PriorityLow},
		}
		slots := []domain.Slot{
			{Name: "Morning", Minutes: 60},
			{Name: "Afternoon", Minutes: 60},
		}

		plan := planner.Plan(tasks, slots, today)

		require.Len(t, plan.Slots, 2)
		morning := plan.Slots[0]
		require.Len(t, morning.Schedule.Tasks, 1)
		assert.Equal(t, "alpha", morning.Schedule.Tasks[0].Title)

		afternoon := plan.Slots[1]
		require.Len(t, afternoon.Schedule.Tasks, 1)
		assert.Equal(t, "beta", afternoon.Schedule.Tasks[0].Title)

		require.Len(t, plan.Unscheduled, 1)
		assert.Equal(t, "gamma", plan.Unscheduled[0].Title)
	})

	t.Run("partially scheduled task is not re-offered to later slots", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "big", EstimatedTime: 90, Priority: domain.PriorityHigh},
		}
		slots := []domain.Slot{
			{Name: "First", Minutes: 60},
			{Name: "Second", Minutes: 60},
		}

		plan := planner.Plan(tasks, slots, today)

		require.Len(t, plan.Slots, 2)
		first := plan.Slots[0]
		require.Len(t, first.Schedule.Tasks, 1)
		assert.Equal(t, 60, first.Schedule.Tasks[0].AllocatedTime)
		assert.True(t, first.Schedule.Tasks[0].Partial)

		assert.Empty(t, plan.Slots[1].Schedule.Tasks, "remainder must not be re-queued")
		assert.Empty(t, plan.Unscheduled)
	})

	t.Run("empty slot list falls back to default slots", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "solo", EstimatedTime: 30, Priority: domain.PriorityMedium},
		}

		plan := planner.Plan(tasks, nil, today)

		defaults := domain.DefaultSlots()
		require.Len(t, plan.Slots, len(defaults))
		for i, slot := range defaults {
			assert.Equal(t, slot.Name, plan.Slots[i].Slot.Name)
			assert.Equal(t, slot.Minutes, plan.Slots[i].Slot.Minutes)
		}
		require.Len(t, plan.Slots[0].Schedule.Tasks, 1)
		assert.Equal(t, "solo", plan.Slots[0].Schedule.Tasks[0].Title)
	})

	t.Run("exhausted pool leaves trailing slots empty", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "only", EstimatedTime: 30, Priority: domain.PriorityHigh},
		}
		slots := []domain.Slot{
			{Name: "One", Minutes: 60},
			{Name: "Two", Minutes: 60},
			{Name: "Three", Minutes: 60},
		}

		plan := planner.Plan(tasks, slots, today)

		require.Len(t, plan.Slots, 3)
		assert.Len(t, plan.Slots[0].Schedule.Tasks, 1)
		assert.Empty(t, plan.Slots[1].Schedule.Tasks)
		assert.Empty(t, plan.Slots[2].Schedule.Tasks)
		assert.Empty(t, plan.Unscheduled)
	})

	t.Run("no tasks yields empty slots and empty unscheduled", func(t *testing.T) {
		plan := planner.Plan(nil, []domain.Slot{{Name: "Only", Minutes: 60}}, today)

		require.Len(t, plan.Slots, 1)
		assert.Empty(t, plan.Slots[0].Schedule.Tasks)
		assert.Empty(t, plan.Unscheduled)
	})
}
