package domain

// UnscheduledSlotName is the reserved bucket for tasks no slot could take.
const UnscheduledSlotName = "Unscheduled"

// Slot is a named, independently budgeted scheduling window.
type Slot struct {
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
}

// DefaultSlots returns the slot set used when the caller supplies none.
func DefaultSlots() []Slot {
	return []Slot{
		{Name: "Morning Focus", Minutes: 120},
		{Name: "Afternoon Work", Minutes: 90},
		{Name: "Evening Tasks", Minutes: 60},
	}
}

// SlotSchedule pairs a slot with the schedule allocated inside it.
type SlotSchedule struct {
	Slot     Slot     `json:"slot"`
	Schedule Schedule `json:"schedule"`
}

// DayPlan is the output of the multi-slot planner: per-slot schedules in
// slot order plus the tasks no slot could accommodate.
type DayPlan struct {
	Slots       []SlotSchedule `json:"slots"`
	Unscheduled []Task         `json:"unscheduled"`
}

// ScheduleFor returns the schedule for a named slot, if present.
func (p DayPlan) ScheduleFor(name string) (Schedule, bool) {
	for _, s := range p.Slots {
		if s.Slot.Name == name {
			return s.Schedule, true
		}
	}
	return Schedule{}, false
}
