package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

func newTestSorter() *Sorter {
	return NewSorter(NewScorer(DefaultScorerConfig()))
}

func TestSorter_Sort(t *testing.T) {
	sorter := newTestSorter()
	today := date("2025-08-03")

	t.Run("orders by descending desirability", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "low", EstimatedTime: 30, Priority: domain.PriorityLow},
			{Title: "high overdue", EstimatedTime: 30, Priority: domain.PriorityHigh, Deadline: deadline("2025-08-01")},
			{Title: "medium", EstimatedTime: 30, Priority: domain.PriorityMedium},
			{Title: "high", EstimatedTime: 30, Priority: domain.PriorityHigh},
		}

		sorted := sorter.Sort(tasks, today)

		require.Len(t, sorted, 4)
		assert.Equal(t, "high overdue", sorted[0].Title)
		assert.Equal(t, "high", sorted[1].Title)
		assert.Equal(t, "medium", sorted[2].Title)
		assert.Equal(t, "low", sorted[3].Title)
	})

	t.Run("equal scores break ties by shorter duration", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "long", EstimatedTime: 120, Priority: domain.PriorityMedium},
			{Title: "short", EstimatedTime: 20, Priority: domain.PriorityMedium},
		}

		sorted := sorter.Sort(tasks, today)

		assert.Equal(t, "short", sorted[0].Title)
		assert.Equal(t, "long", sorted[1].Title)
	})

	t.Run("fully equal tasks keep input order", func(t *testing.T) {
		tasks := []domain.Task{
			{ID: "first", Title: "same", EstimatedTime: 45, Priority: domain.PriorityMedium},
			{ID: "second", Title: "same", EstimatedTime: 45, Priority: domain.PriorityMedium},
			{ID: "third", Title: "same", EstimatedTime: 45, Priority: domain.PriorityMedium},
		}

		sorted := sorter.Sort(tasks, today)

		assert.Equal(t, "first", sorted[0].ID)
		assert.Equal(t, "second", sorted[1].ID)
		assert.Equal(t, "third", sorted[2].ID)
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "low", EstimatedTime: 30, Priority: domain.PriorityLow},
			{Title: "high", EstimatedTime: 30, Priority: domain.PriorityHigh},
		}

		_ = sorter.Sort(tasks, today)

		assert.Equal(t, "low", tasks[0].Title)
		assert.Equal(t, "high", tasks[1].Title)
	})
}
