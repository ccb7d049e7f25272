package domain

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Priority represents a task's importance tier.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

var ErrInvalidPriority = errors.New("invalid priority value")

var priorityNames = map[Priority]string{
	PriorityLow:    "low",
	PriorityMedium: "medium",
	PriorityHigh:   "high",
}

var priorityValues = map[string]Priority{
	"low":    PriorityLow,
	"medium": PriorityMedium,
	"high":   PriorityHigh,
}

// Legacy clients send priority as a number where 1=High, 2=Medium, 3=Low.
var legacyPriorities = map[int]Priority{
	1: PriorityHigh,
	2: PriorityMedium,
	3: PriorityLow,
}

// ParsePriority creates a Priority from a string.
func ParsePriority(s string) (Priority, error) {
	p, ok := priorityValues[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return PriorityMedium, ErrInvalidPriority
	}
	return p, nil
}

// String returns the string representation of the priority.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "unknown"
}

// IsValid returns true if the priority is a valid tier.
func (p Priority) IsValid() bool {
	_, ok := priorityNames[p]
	return ok
}

// Weight returns the numeric weight used by the schedule analyzer
// (high=3, medium=2, low=1).
func (p Priority) Weight() int {
	return int(p)
}

// Demote returns the priority one step lower, never below Low.
func (p Priority) Demote() Priority {
	if p <= PriorityLow {
		return PriorityLow
	}
	return p - 1
}

// MarshalJSON encodes the priority as its string name.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts either a tier name ("high") or the legacy numeric
// form (1=High, 2=Medium, 3=Low). Anything unrecognized becomes Medium;
// malformed priorities are recovered, never surfaced as errors.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, convErr := strconv.Atoi(strings.TrimSpace(s)); convErr == nil {
			*p = fromLegacy(n)
			return nil
		}
		parsed, parseErr := ParsePriority(s)
		if parseErr != nil {
			*p = PriorityMedium
			return nil
		}
		*p = parsed
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = fromLegacy(n)
		return nil
	}

	*p = PriorityMedium
	return nil
}

func fromLegacy(n int) Priority {
	if p, ok := legacyPriorities[n]; ok {
		return p
	}
	return PriorityMedium
}
