package domain

// Rating is a qualitative judgement of a produced schedule.
type Rating string

const (
	RatingPoor      Rating = "poor"
	RatingFair      Rating = "fair"
	RatingGood      Rating = "good"
	RatingExcellent Rating = "excellent"
)

// Diagnostics is a derived, read-only aggregate over a produced schedule.
// It is never part of the persisted task record.
type Diagnostics struct {
	TimeUtilization  float64 `json:"time_utilization"`
	PriorityScore    float64 `json:"priority_score"`
	QualityRating    Rating  `json:"quality_rating"`
	TotalAllocated   int     `json:"total_allocated"`
	ScheduledTasks   int     `json:"scheduled_tasks"`
	AvgCompletionPct float64 `json:"avg_completion_percentage"`
}

// CompletionStats aggregates completed tasks.
type CompletionStats struct {
	TotalCompleted    int            `json:"total_completed"`
	TotalTimeSpent    int            `json:"total_time_spent"`
	AvgCompletionTime float64        `json:"avg_completion_time"`
	ByPriority        map[string]int `json:"completion_by_priority"`
	ProductivityScore float64        `json:"productivity_score"`
}

// CompletionEstimate projects when the active workload could be finished.
type CompletionEstimate struct {
	TotalTime         int            `json:"total_time"`
	AdjustedTime      int            `json:"adjusted_time"`
	DaysNeeded        float64        `json:"days_needed"`
	CompletionDate    string         `json:"estimated_completion"`
	PriorityBreakdown map[string]int `json:"priority_breakdown"`
	DailyCapacity     int            `json:"daily_capacity"`
	EfficiencyFactor  float64        `json:"efficiency_factor"`
}
