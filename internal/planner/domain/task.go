// Package domain defines the plain records the scheduling engine consumes
// and produces. The engine never mutates caller-supplied tasks; every
// operation copies before annotating.
package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultEstimatedMinutes substitutes a missing or malformed estimate.
	DefaultEstimatedMinutes = 30

	// DeadlineLayout is the calendar-date form deadlines cross the wire in.
	DeadlineLayout = "2006-01-02"
)

// Task is an immutable input record for the scheduling engine.
type Task struct {
	ID            string    `json:"id,omitempty"`
	Title         string    `json:"title"`
	EstimatedTime int       `json:"estimated_time"`
	ActualTime    int       `json:"actual_time,omitempty"`
	Priority      Priority  `json:"priority"`
	Deadline      *Deadline `json:"deadline,omitempty"`
	Completed     bool      `json:"completed,omitempty"`

	// Split metadata, set only on sub-tasks produced by the splitter.
	SessionIndex int    `json:"session_index,omitempty"`
	SessionCount int    `json:"session_count,omitempty"`
	ParentID     string `json:"parent_id,omitempty"`
}

// UnmarshalJSON decodes a task, recovering malformed estimates locally.
// Clients send estimated_time as a number or a numeric string; anything
// unparseable becomes the default estimate instead of failing the request.
func (t *Task) UnmarshalJSON(data []byte) error {
	type plain Task
	aux := struct {
		EstimatedTime json.RawMessage `json:"estimated_time"`
		*plain
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.EstimatedTime = decodeMinutes(aux.EstimatedTime)
	return nil
}

// decodeMinutes accepts a JSON number or a numeric string, truncating
// fractions. An absent field stays zero for Sanitized to fill; anything
// else yields the default estimate.
func decodeMinutes(raw json.RawMessage) int {
	if len(raw) == 0 || string(raw) == "null" {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, convErr := strconv.Atoi(strings.TrimSpace(s)); convErr == nil {
			return n
		}
	}
	return DefaultEstimatedMinutes
}

// Sanitized returns a copy with documented defaults substituted for
// malformed values: empty title, non-positive estimate, invalid tier.
func (t Task) Sanitized() Task {
	out := t
	if strings.TrimSpace(out.Title) == "" {
		out.Title = "Untitled Task"
	}
	if out.EstimatedTime <= 0 {
		out.EstimatedTime = DefaultEstimatedMinutes
	}
	if !out.Priority.IsValid() {
		out.Priority = PriorityMedium
	}
	if out.Deadline != nil && out.Deadline.IsZero() {
		out.Deadline = nil
	}
	return out
}

// SanitizeTasks copies and sanitizes a task list. The input slice is never
// modified.
func SanitizeTasks(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Sanitized())
	}
	return out
}

// ActiveTasks returns the subset of tasks not yet completed, preserving
// input order.
func ActiveTasks(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// Deadline is an optional calendar date. Malformed date strings decode to
// the zero value and are treated as "no deadline" throughout the engine.
type Deadline struct {
	date time.Time
}

// NewDeadline creates a deadline for the given date, truncated to midnight UTC.
func NewDeadline(t time.Time) Deadline {
	return Deadline{date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDeadline parses a YYYY-MM-DD date string. The zero Deadline and true
// are returned for empty input; malformed input yields the zero Deadline and
// false, never an error.
func ParseDeadline(s string) (Deadline, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Deadline{}, true
	}
	t, err := time.Parse(DeadlineLayout, s)
	if err != nil {
		return Deadline{}, false
	}
	return NewDeadline(t), true
}

// IsZero reports whether the deadline is unset.
func (d Deadline) IsZero() bool {
	return d.date.IsZero()
}

// Date returns the deadline's calendar date.
func (d Deadline) Date() time.Time {
	return d.date
}

// DaysUntil returns the whole calendar days between today and the deadline.
// Negative values mean the deadline has passed.
func (d Deadline) DaysUntil(today time.Time) int {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.date.Sub(day).Hours() / 24)
}

// String returns the YYYY-MM-DD form, or the empty string when unset.
func (d Deadline) String() string {
	if d.IsZero() {
		return ""
	}
	return d.date.Format(DeadlineLayout)
}

// MarshalJSON encodes the deadline as a YYYY-MM-DD string.
func (d Deadline) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string. Unparseable input leaves the
// deadline unset rather than failing the whole task.
func (d *Deadline) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Deadline{}
		return nil
	}
	parsed, _ := ParseDeadline(s)
	*d = parsed
	return nil
}
