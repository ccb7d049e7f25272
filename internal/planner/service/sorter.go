package service

import (
	"sort"
	"time"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

// Sorter produces a total order over tasks: descending composite score,
// ties broken by ascending estimated duration, remaining ties by input
// order. Output is deterministic for identical input.
type Sorter struct {
	scorer *Scorer
}

// NewSorter creates a sorter backed by the given scorer.
func NewSorter(scorer *Scorer) *Sorter {
	return &Sorter{scorer: scorer}
}

// Sort returns a new slice ordered most-urgent-first. The input slice is
// left untouched.
func (s *Sorter) Sort(tasks []domain.Task, today time.Time) []domain.Task {
	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)

	scores := make([]float64, len(sorted))
	for i, t := range sorted {
		scores[i] = s.scorer.Score(t, today)
	}

	order := make([]int, len(sorted))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if scores[i] != scores[j] {
			return scores[i] > scores[j]
		}
		return sorted[i].EstimatedTime < sorted[j].EstimatedTime
	})

	out := make([]domain.Task, len(sorted))
	for pos, idx := range order {
		out[pos] = sorted[idx]
	}
	return out
}
