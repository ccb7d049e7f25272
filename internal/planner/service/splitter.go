package service

import (
	"fmt"
	"math"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

// Splitter decomposes oversized tasks into bounded sub-sessions.
type Splitter struct{}

// NewSplitter creates a splitter.
func NewSplitter() *Splitter {
	return &Splitter{}
}

// Split returns the task unchanged when it fits a single session.
// Otherwise it produces ceil(duration/maxSession) sub-tasks of evenly
// divided duration, each tagged with its session index, the session count,
// and a back-reference to the original task. Sub-sessions after the first
// are demoted one priority step, never below Low.
func (s *Splitter) Split(task domain.Task, maxSessionMinutes int) []domain.Task {
	task = task.Sanitized()
	if maxSessionMinutes <= 0 || task.EstimatedTime <= maxSessionMinutes {
		return []domain.Task{task}
	}

	count := int(math.Ceil(float64(task.EstimatedTime) / float64(maxSessionMinutes)))
	perSession := int(math.Round(float64(task.EstimatedTime) / float64(count)))

	subs := make([]domain.Task, 0, count)
	for i := 1; i <= count; i++ {
		sub := task
		sub.ID = ""
		sub.Title = fmt.Sprintf("%s (session %d/%d)", task.Title, i, count)
		sub.EstimatedTime = perSession
		sub.SessionIndex = i
		sub.SessionCount = count
		sub.ParentID = task.ID
		if i > 1 {
			sub.Priority = task.Priority.Demote()
		}
		subs = append(subs, sub)
	}
	return subs
}
