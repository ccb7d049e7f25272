package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

func TestSplitter_Split(t *testing.T) {
	splitter := NewSplitter()

	t.Run("task fitting a session is returned unchanged", func(t *testing.T) {
		task := domain.Task{ID: "t1", Title: "write report", EstimatedTime: 60, Priority: domain.PriorityHigh}

		subs := splitter.Split(task, 90)

		require.Len(t, subs, 1)
		assert.Equal(t, task, subs[0])
	})

	t.Run("oversized task splits into even sessions", func(t *testing.T) {
		task := domain.Task{ID: "t1", Title: "deep work", EstimatedTime: 150, Priority: domain.PriorityHigh}

		subs := splitter.Split(task, 90)

		require.Len(t, subs, 2)
		assert.Equal(t, 75, subs[0].EstimatedTime)
		assert.Equal(t, 75, subs[1].EstimatedTime)

		assert.Equal(t, 1, subs[0].SessionIndex)
		assert.Equal(t, 2, subs[1].SessionIndex)
		for _, sub := range subs {
			assert.Equal(t, 2, sub.SessionCount)
			assert.Equal(t, "t1", sub.ParentID)
			assert.Contains(t, sub.Title, "deep work")
		}

		// The first session keeps the original tier, later ones step down.
		assert.Equal(t, domain.PriorityHigh, subs[0].Priority)
		assert.Equal(t, domain.PriorityMedium, subs[1].Priority)
	})

	t.Run("priority never drops below low", func(t *testing.T) {
		task := domain.Task{ID: "t1", Title: "chores", EstimatedTime: 100, Priority: domain.PriorityLow}

		subs := splitter.Split(task, 45)

		require.Len(t, subs, 3)
		for _, sub := range subs {
			assert.Equal(t, domain.PriorityLow, sub.Priority)
		}
	})

	t.Run("session count is the ceiling of duration over max", func(t *testing.T) {
		task := domain.Task{ID: "t1", Title: "study", EstimatedTime: 200, Priority: domain.PriorityMedium}

		subs := splitter.Split(task, 90)

		require.Len(t, subs, 3)
		for _, sub := range subs {
			assert.Equal(t, 67, sub.EstimatedTime)
		}
	})
}
