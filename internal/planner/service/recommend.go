package service

import (
	"fmt"
	"time"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

// MaxRecommendations caps the advisory list.
const MaxRecommendations = 5

// EmptyTaskListRecommendation is the sentinel advisory for an empty set.
const EmptyTaskListRecommendation = "Start by adding some tasks to get organized!"

// AllClearRecommendation is emitted when no trigger fires.
const AllClearRecommendation = "Great job! Your task management looks well-organized."

// Recommender inspects a task set (active and completed) and produces short
// advisory strings. Triggers are evaluated independently and emitted in a
// fixed order, so identical inputs always produce identical output.
type Recommender struct{}

// NewRecommender creates a recommender.
func NewRecommender() *Recommender {
	return &Recommender{}
}

// Recommend returns at most MaxRecommendations advisories for the task set.
func (r *Recommender) Recommend(tasks []domain.Task, today time.Time) []string {
	if len(tasks) == 0 {
		return []string{EmptyTaskListRecommendation}
	}

	tasks = domain.SanitizeTasks(tasks)
	active := domain.ActiveTasks(tasks)

	var recs []string
	add := func(msg string) {
		if len(recs) < MaxRecommendations {
			recs = append(recs, msg)
		}
	}

	if n := countOverdue(active, today); n > 0 {
		add(fmt.Sprintf("You have %d overdue task(s). Consider rescheduling or prioritizing them.", n))
	}

	switch {
	case len(active) > 20:
		add("You have a lot of active tasks. Consider archiving or deferring some to stay focused.")
	case len(active) > 0 && len(active) < 3:
		add("Only a few tasks on your list. Capture upcoming work so nothing slips through.")
	}

	highPriority := 0
	for _, t := range active {
		if t.Priority == domain.PriorityHigh {
			highPriority++
		}
	}
	switch {
	case highPriority > 5:
		add("You have many high-priority tasks. Review priorities to focus on what's truly urgent.")
	case highPriority == 0 && len(active) > 0:
		add("No task is marked high priority. Flag the most important ones to guide your schedule.")
	}

	totalEstimated := 0
	for _, t := range active {
		totalEstimated += t.EstimatedTime
	}
	if totalEstimated > 480 {
		add("Your tasks require significant time. Consider spreading them across multiple days.")
	}

	completed := len(tasks) - len(active)
	rate := float64(completed) / float64(len(tasks)) * 100
	switch {
	case rate < 30:
		add("Your completion rate is low. Try finishing a few small tasks to build momentum.")
	case rate > 80:
		add("Great momentum! Most of your tasks are done - line up what comes next.")
	}

	withDeadline := 0
	for _, t := range active {
		if t.Deadline != nil && !t.Deadline.IsZero() {
			withDeadline++
		}
	}
	if len(active) > 0 && withDeadline*2 < len(active) {
		add("Many tasks don't have deadlines. Setting deadlines can improve time management and motivation.")
	}

	long := 0
	for _, t := range active {
		if t.EstimatedTime > 120 {
			long++
		}
	}
	if len(active) > 0 && long*3 > len(active) {
		add("Consider breaking down large tasks into smaller, more manageable chunks.")
	}

	if len(recs) == 0 {
		return []string{AllClearRecommendation}
	}
	return recs
}

func countOverdue(tasks []domain.Task, today time.Time) int {
	n := 0
	for _, t := range tasks {
		if t.Deadline != nil && !t.Deadline.IsZero() && t.Deadline.DaysUntil(today) < 0 {
			n++
		}
	}
	return n
}
