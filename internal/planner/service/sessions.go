package service

import (
	"math"
	"time"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

const (
	// DefaultSessionLength is the Pomodoro-style focus block length.
	DefaultSessionLength = 25
	// DefaultBreakLength is the short break between focus blocks.
	DefaultBreakLength = 5
	// LongBreakEvery inserts a long break after every Nth focus session.
	LongBreakEvery = 4
	// LongBreakFactor scales the base break length for long breaks.
	LongBreakFactor = 3
)

// SessionPlanner repacks tasks into fixed-length focus sessions interleaved
// with short and long breaks.
type SessionPlanner struct {
	sorter *Sorter
}

// NewSessionPlanner creates a focus-session planner.
func NewSessionPlanner(sorter *Sorter) *SessionPlanner {
	return &SessionPlanner{sorter: sorter}
}

// Plan emits, for each task in priority order, ceil(duration/sessionLength)
// focus sessions; the final session of a task carries the leftover
// duration. A break follows every focus session except the very last one in
// the plan: a long break (3x the base length) after every 4th emitted focus
// session, a short break otherwise.
func (p *SessionPlanner) Plan(tasks []domain.Task, sessionLength, breakLength int, today time.Time) []domain.Session {
	if sessionLength <= 0 {
		sessionLength = DefaultSessionLength
	}
	if breakLength <= 0 {
		breakLength = DefaultBreakLength
	}
	if len(tasks) == 0 {
		return nil
	}

	sorted := p.sorter.Sort(domain.SanitizeTasks(tasks), today)

	var focus []domain.Session
	for _, task := range sorted {
		needed := int(math.Ceil(float64(task.EstimatedTime) / float64(sessionLength)))
		for i := 1; i <= needed; i++ {
			duration := sessionLength
			if i == needed {
				duration = task.EstimatedTime - sessionLength*(needed-1)
				if duration > sessionLength {
					duration = sessionLength
				}
			}
			focus = append(focus, domain.Session{
				Kind:         domain.SessionFocus,
				Duration:     duration,
				TaskID:       task.ID,
				TaskTitle:    task.Title,
				SessionIndex: i,
				SessionCount: needed,
			})
		}
	}

	plan := make([]domain.Session, 0, len(focus)*2)
	for i, session := range focus {
		plan = append(plan, session)
		if i == len(focus)-1 {
			break // no break after the final session
		}
		if (i+1)%LongBreakEvery == 0 {
			plan = append(plan, domain.Session{
				Kind:     domain.SessionLongBreak,
				Duration: breakLength * LongBreakFactor,
			})
		} else {
			plan = append(plan, domain.Session{
				Kind:     domain.SessionShortBreak,
				Duration: breakLength,
			})
		}
	}
	return plan
}
