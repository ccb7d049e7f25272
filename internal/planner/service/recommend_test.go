package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

func TestRecommender_Recommend(t *testing.T) {
	recommender := NewRecommender()
	today := date("2025-08-03")

	t.Run("empty task list gets the getting-started nudge", func(t *testing.T) {
		recs := recommender.Recommend(nil, today)

		require.Len(t, recs, 1)
		assert.Equal(t, EmptyTaskListRecommendation, recs[0])
	})

	t.Run("well organized set gets the affirmation", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "a", EstimatedTime: 60, Priority: domain.PriorityHigh, Deadline: deadline("2025-08-05")},
			{Title: "b", EstimatedTime: 60, Priority: domain.PriorityMedium, Deadline: deadline("2025-08-06")},
			{Title: "c", EstimatedTime: 60, Priority: domain.PriorityMedium, Deadline: deadline("2025-08-07")},
			{Title: "d", EstimatedTime: 60, Priority: domain.PriorityMedium, Deadline: deadline("2025-08-08")},
			{Title: "e", EstimatedTime: 30, Priority: domain.PriorityLow, Completed: true},
			{Title: "f", EstimatedTime: 30, Priority: domain.PriorityLow, Completed: true},
		}

		recs := recommender.Recommend(tasks, today)

		require.Len(t, recs, 1)
		assert.Equal(t, AllClearRecommendation, recs[0])
	})

	t.Run("overdue tasks are flagged first with their count", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "late1", EstimatedTime: 60, Priority: domain.PriorityHigh, Deadline: deadline("2025-08-01")},
			{Title: "late2", EstimatedTime: 60, Priority: domain.PriorityMedium, Deadline: deadline("2025-07-20")},
			{Title: "ontime", EstimatedTime: 60, Priority: domain.PriorityMedium, Deadline: deadline("2025-08-10")},
		}

		recs := recommender.Recommend(tasks, today)

		require.NotEmpty(t, recs)
		assert.Contains(t, recs[0], "2 overdue task(s)")
	})

	t.Run("too few active tasks suggests capturing work", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "only", EstimatedTime: 30, Priority: domain.PriorityHigh, Deadline: deadline("2025-08-04")},
		}

		recs := recommender.Recommend(tasks, today)

		assert.Contains(t, recs, "Only a few tasks on your list. Capture upcoming work so nothing slips through.")
	})

	t.Run("no high priority task suggests flagging one", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "a", EstimatedTime: 30, Priority: domain.PriorityMedium, Deadline: deadline("2025-08-04")},
			{Title: "b", EstimatedTime: 30, Priority: domain.PriorityLow, Deadline: deadline("2025-08-05")},
			{Title: "c", EstimatedTime: 30, Priority: domain.PriorityLow, Deadline: deadline("2025-08-06")},
		}

		recs := recommender.Recommend(tasks, today)

		assert.Contains(t, recs, "No task is marked high priority. Flag the most important ones to guide your schedule.")
	})

	t.Run("overloaded day suggests spreading tasks out", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "a", EstimatedTime: 200, Priority: domain.PriorityHigh, Deadline: deadline("2025-08-04")},
			{Title: "b", EstimatedTime: 200, Priority: domain.PriorityMedium, Deadline: deadline("2025-08-05")},
			{Title: "c", EstimatedTime: 120, Priority: domain.PriorityMedium, Deadline: deadline("2025-08-06")},
		}

		recs := recommender.Recommend(tasks, today)

		assert.Contains(t, recs, "Your tasks require significant time. Consider spreading them across multiple days.")
	})

	t.Run("missing deadlines suggests setting them", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "a", EstimatedTime: 30, Priority: domain.PriorityHigh},
			{Title: "b", EstimatedTime: 30, Priority: domain.PriorityMedium},
			{Title: "c", EstimatedTime: 30, Priority: domain.PriorityMedium},
			{Title: "d", EstimatedTime: 30, Priority: domain.PriorityMedium, Deadline: deadline("2025-08-05")},
		}

		recs := recommender.Recommend(tasks, today)

		assert.Contains(t, recs, "Many tasks don't have deadlines. Setting deadlines can improve time management and motivation.")
	})

	t.Run("mostly oversized tasks suggests splitting them", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "a", EstimatedTime: 180, Priority: domain.PriorityHigh, Deadline: deadline("2025-08-04")},
			{Title: "b", EstimatedTime: 150, Priority: domain.PriorityMedium, Deadline: deadline("2025-08-05")},
		}

		recs := recommender.Recommend(tasks, today)

		assert.Contains(t, recs, "Consider breaking down large tasks into smaller, more manageable chunks.")
	})

	t.Run("advisories are capped at the maximum", func(t *testing.T) {
		var tasks []domain.Task
		for i := 0; i < 25; i++ {
			tasks = append(tasks, domain.Task{
				Title: "t", EstimatedTime: 60, Priority: domain.PriorityLow,
			})
		}
		tasks[0].Deadline = deadline("2025-07-01")

		recs := recommender.Recommend(tasks, today)

		assert.Len(t, recs, MaxRecommendations)
	})

	t.Run("identical input produces identical output", func(t *testing.T) {
		tasks := []domain.Task{
			{Title: "late", EstimatedTime: 200, Priority: domain.PriorityMedium, Deadline: deadline("2025-08-01")},
			{Title: "open", EstimatedTime: 300, Priority: domain.PriorityMedium},
		}

		first := recommender.Recommend(tasks, today)
		second := recommender.Recommend(tasks, today)

		assert.Equal(t, first, second)
	})
}
