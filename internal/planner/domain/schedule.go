package domain

import "encoding/json"

// ScheduledTask is a copy of a Task annotated with its allocation.
type ScheduledTask struct {
	Task

	AllocatedTime        int     `json:"allocated_time"`
	RemainingTime        int     `json:"remaining_time"`
	CompletionPercentage float64 `json:"completion_percentage"`
	ScheduleOrder        int     `json:"schedule_order"`
	Partial              bool    `json:"partial,omitempty"`
	SuggestedBreak       int     `json:"suggested_break,omitempty"`
}

// UnmarshalJSON decodes the embedded task fields and then the allocation
// annotations, which the promoted Task decoder does not see.
func (st *ScheduledTask) UnmarshalJSON(data []byte) error {
	if err := st.Task.UnmarshalJSON(data); err != nil {
		return err
	}
	var aux struct {
		AllocatedTime        int     `json:"allocated_time"`
		RemainingTime        int     `json:"remaining_time"`
		CompletionPercentage float64 `json:"completion_percentage"`
		ScheduleOrder        int     `json:"schedule_order"`
		Partial              bool    `json:"partial"`
		SuggestedBreak       int     `json:"suggested_break"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	st.AllocatedTime = aux.AllocatedTime
	st.RemainingTime = aux.RemainingTime
	st.CompletionPercentage = aux.CompletionPercentage
	st.ScheduleOrder = aux.ScheduleOrder
	st.Partial = aux.Partial
	st.SuggestedBreak = aux.SuggestedBreak
	return nil
}

// NewScheduledTask annotates a task with the minutes actually granted.
// Allocation is clamped to the estimate and completion percentage is capped
// at 100.
func NewScheduledTask(t Task, allocated int) ScheduledTask {
	if allocated > t.EstimatedTime {
		allocated = t.EstimatedTime
	}
	if allocated < 0 {
		allocated = 0
	}

	pct := 100.0
	if t.EstimatedTime > 0 {
		pct = float64(allocated) / float64(t.EstimatedTime) * 100
		if pct > 100 {
			pct = 100
		}
	}

	return ScheduledTask{
		Task:                 t,
		AllocatedTime:        allocated,
		RemainingTime:        t.EstimatedTime - allocated,
		CompletionPercentage: pct,
		Partial:              allocated < t.EstimatedTime,
	}
}

// Schedule is an ordered allocation produced by a single engine call.
type Schedule struct {
	Tasks []ScheduledTask `json:"tasks"`
}

// TotalAllocated returns the sum of allocated minutes.
func (s Schedule) TotalAllocated() int {
	total := 0
	for _, t := range s.Tasks {
		total += t.AllocatedTime
	}
	return total
}

// Len returns the number of scheduled tasks.
func (s Schedule) Len() int {
	return len(s.Tasks)
}
