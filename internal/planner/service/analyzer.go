package service

import (
	"math"
	"time"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

// Quality composite point values. The rating buckets are percentages of
// the maximum attainable composite.
const (
	balancePoints    = 30.0 // all three priority tiers present
	varietyPoints    = 20.0 // both short and long allocations present
	completionPoints = 50.0 // scaled by average completion percentage

	shortAllocationMax = 30 // minutes
	longAllocationMin  = 90 // minutes, exclusive
)

// Analyzer derives efficiency and quality metrics from produced schedules
// and task sets. All metrics degrade to zero or neutral values on empty
// input.
type Analyzer struct{}

// NewAnalyzer creates an analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze computes utilization, the priority-weighted score, and a
// qualitative rating for a schedule produced against the given budget.
func (a *Analyzer) Analyze(schedule domain.Schedule, budget int) domain.Diagnostics {
	diag := domain.Diagnostics{
		QualityRating:  domain.RatingPoor,
		TotalAllocated: schedule.TotalAllocated(),
		ScheduledTasks: schedule.Len(),
	}
	if schedule.Len() == 0 {
		return diag
	}

	if budget > 0 {
		diag.TimeUtilization = round1(float64(diag.TotalAllocated) / float64(budget) * 100)

		weighted := 0.0
		for _, t := range schedule.Tasks {
			weighted += float64(t.AllocatedTime) * float64(t.Priority.Weight())
		}
		maxWeighted := float64(budget) * float64(domain.PriorityHigh.Weight())
		diag.PriorityScore = round1(weighted / maxWeighted * 100)
	}

	diag.AvgCompletionPct = round1(a.avgCompletion(schedule))
	diag.QualityRating = a.rate(schedule, diag.AvgCompletionPct)
	return diag
}

func (a *Analyzer) avgCompletion(schedule domain.Schedule) float64 {
	if schedule.Len() == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range schedule.Tasks {
		sum += t.CompletionPercentage
	}
	return sum / float64(schedule.Len())
}

// rate buckets a weighted composite of priority balance, duration variety,
// and average completion into poor/fair/good/excellent.
func (a *Analyzer) rate(schedule domain.Schedule, avgCompletion float64) domain.Rating {
	tiers := make(map[domain.Priority]bool)
	hasShort, hasLong := false, false
	for _, t := range schedule.Tasks {
		tiers[t.Priority] = true
		if t.AllocatedTime <= shortAllocationMax {
			hasShort = true
		}
		if t.AllocatedTime > longAllocationMin {
			hasLong = true
		}
	}

	composite := 0.0
	if tiers[domain.PriorityHigh] && tiers[domain.PriorityMedium] && tiers[domain.PriorityLow] {
		composite += balancePoints
	}
	if hasShort && hasLong {
		composite += varietyPoints
	}
	composite += avgCompletion / 100 * completionPoints

	pct := composite / (balancePoints + varietyPoints + completionPoints) * 100
	switch {
	case pct >= 80:
		return domain.RatingExcellent
	case pct >= 60:
		return domain.RatingGood
	case pct >= 40:
		return domain.RatingFair
	default:
		return domain.RatingPoor
	}
}

// CompletionStats aggregates completed tasks into totals, averages, and a
// 0-100 productivity score. Time spent uses recorded actual minutes,
// falling back to the estimate.
func (a *Analyzer) CompletionStats(completed []domain.Task) domain.CompletionStats {
	stats := domain.CompletionStats{
		ByPriority: map[string]int{
			domain.PriorityHigh.String():   0,
			domain.PriorityMedium.String(): 0,
			domain.PriorityLow.String():    0,
		},
	}
	if len(completed) == 0 {
		return stats
	}

	for _, t := range completed {
		t = t.Sanitized()
		spent := t.ActualTime
		if spent <= 0 {
			spent = t.EstimatedTime
		}
		stats.TotalCompleted++
		stats.TotalTimeSpent += spent
		stats.ByPriority[t.Priority.String()]++
	}

	stats.AvgCompletionTime = round1(float64(stats.TotalTimeSpent) / float64(stats.TotalCompleted))
	stats.ProductivityScore = round1(math.Min(100,
		float64(stats.TotalCompleted)*10+math.Min(float64(stats.TotalTimeSpent)/60, 40)))
	return stats
}

// DefaultEfficiencyFactor discounts the raw estimate for interruptions and
// context switching.
const DefaultEfficiencyFactor = 0.8

// dailyCapacityMinutes assumes six productive hours per day.
const dailyCapacityMinutes = 360

// EstimateCompletion projects when the given workload could be finished,
// assuming six productive hours per day adjusted by the efficiency factor.
func (a *Analyzer) EstimateCompletion(tasks []domain.Task, efficiency float64, today time.Time) domain.CompletionEstimate {
	if efficiency <= 0 || efficiency > 1 {
		efficiency = DefaultEfficiencyFactor
	}

	est := domain.CompletionEstimate{
		PriorityBreakdown: map[string]int{
			domain.PriorityHigh.String():   0,
			domain.PriorityMedium.String(): 0,
			domain.PriorityLow.String():    0,
		},
		DailyCapacity:    dailyCapacityMinutes,
		EfficiencyFactor: efficiency,
	}
	if len(tasks) == 0 {
		return est
	}

	for _, t := range domain.SanitizeTasks(tasks) {
		est.TotalTime += t.EstimatedTime
		est.PriorityBreakdown[t.Priority.String()] += t.EstimatedTime
	}

	adjusted := float64(est.TotalTime) / efficiency
	days := adjusted / dailyCapacityMinutes
	est.AdjustedTime = int(math.Round(adjusted))
	est.DaysNeeded = round1(days)
	est.CompletionDate = today.AddDate(0, 0, int(days)+1).Format(domain.DeadlineLayout)
	return est
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
