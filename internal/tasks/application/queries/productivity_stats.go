package queries

import (
	"context"
	"fmt"
	"math"
	"time"

	plannerdomain "github.com/taskflowhq/taskflow/internal/planner/domain"
	"github.com/taskflowhq/taskflow/internal/tasks/domain/task"
)

const (
	// DefaultTrendDays is the trend window used when none is given.
	DefaultTrendDays = 30
	// MaxTrendDays caps the trend window to one year.
	MaxTrendDays = 365

	weeklyWindowDays = 7
)

// Trend directions reported by the stats handler.
const (
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

// ProductivityStatsQuery requests activity aggregates over a trailing
// window. Out-of-range TrendDays fall back to DefaultTrendDays.
type ProductivityStatsQuery struct {
	TrendDays int
}

// DayActivity is one trend data point.
type DayActivity struct {
	Date           string  `json:"date"`
	TasksCreated   int     `json:"tasks_created"`
	TasksCompleted int     `json:"tasks_completed"`
	CompletionRate float64 `json:"completion_rate"`
	TotalTime      int     `json:"total_time"`
}

// WeeklyPerformance aggregates the last seven days of completed work.
type WeeklyPerformance struct {
	Period            string         `json:"period"`
	DailyCompleted    map[string]int `json:"daily_completion_counts"`
	TotalCompleted    int            `json:"total_completed"`
	AvgDailyCompleted float64        `json:"avg_daily_completion"`
	TotalTimeMinutes  int            `json:"total_time_minutes"`
	AvgDailyTime      float64        `json:"avg_daily_time"`
	CompletionRate    float64        `json:"completion_rate"`
	ByPriority        map[string]int `json:"priority_distribution"`
	MostProductiveDay string         `json:"most_productive_day,omitempty"`
}

// TimeAccuracy compares recorded actual minutes against estimates across
// completed tasks that carry both.
type TimeAccuracy struct {
	TasksMeasured  int     `json:"tasks_measured"`
	AvgAccuracyPct float64 `json:"avg_accuracy_percentage"`
	TotalVariance  int     `json:"total_variance_minutes"`
}

// ProductivityStats is the full report.
type ProductivityStats struct {
	Weekly                WeeklyPerformance `json:"weekly"`
	TrendDays             int               `json:"trend_days"`
	Trend                 []DayActivity     `json:"trends"`
	TrendDirection        string            `json:"trend_direction"`
	TotalTasks            int               `json:"total_tasks"`
	TotalCompleted        int               `json:"total_completed"`
	AvgDailyCompletion    float64           `json:"avg_daily_completion"`
	OverallCompletionRate float64           `json:"overall_completion_rate"`
	Accuracy              TimeAccuracy      `json:"time_accuracy"`
}

// ProductivityStatsHandler handles the ProductivityStatsQuery.
type ProductivityStatsHandler struct {
	taskRepo task.Repository
	now      func() time.Time
}

// NewProductivityStatsHandler creates a new ProductivityStatsHandler.
func NewProductivityStatsHandler(taskRepo task.Repository) *ProductivityStatsHandler {
	return &ProductivityStatsHandler{taskRepo: taskRepo, now: time.Now}
}

// Handle executes the ProductivityStatsQuery.
func (h *ProductivityStatsHandler) Handle(ctx context.Context, q ProductivityStatsQuery) (ProductivityStats, error) {
	days := q.TrendDays
	if days <= 0 || days > MaxTrendDays {
		days = DefaultTrendDays
	}

	all, err := h.taskRepo.FindAll(ctx)
	if err != nil {
		return ProductivityStats{}, fmt.Errorf("failed to load tasks: %w", err)
	}

	today := dateOf(h.now().UTC())
	stats := ProductivityStats{
		Weekly:    h.weekly(all, today),
		TrendDays: days,
		Accuracy:  timeAccuracy(all),
	}
	stats.Trend, stats.TrendDirection = h.trend(all, today, days)

	start := today.AddDate(0, 0, -(days - 1))
	for _, t := range all {
		created := dateOf(t.CreatedAt().UTC())
		if created.Before(start) || created.After(today) {
			continue
		}
		stats.TotalTasks++
		if t.IsCompleted() {
			stats.TotalCompleted++
		}
	}
	stats.AvgDailyCompletion = round2(float64(stats.TotalCompleted) / float64(days))
	if stats.TotalTasks > 0 {
		stats.OverallCompletionRate = round1(float64(stats.TotalCompleted) / float64(stats.TotalTasks) * 100)
	}

	return stats, nil
}

func (h *ProductivityStatsHandler) weekly(all []*task.Task, today time.Time) WeeklyPerformance {
	start := today.AddDate(0, 0, -(weeklyWindowDays - 1))
	w := WeeklyPerformance{
		Period:         fmt.Sprintf("%s to %s", formatDate(start), formatDate(today)),
		DailyCompleted: make(map[string]int, weeklyWindowDays),
		ByPriority: map[string]int{
			plannerdomain.PriorityHigh.String():   0,
			plannerdomain.PriorityMedium.String(): 0,
			plannerdomain.PriorityLow.String():    0,
		},
	}
	for i := 0; i < weeklyWindowDays; i++ {
		w.DailyCompleted[formatDate(start.AddDate(0, 0, i))] = 0
	}

	created := 0
	for _, t := range all {
		day := dateOf(t.CreatedAt().UTC())
		if !day.Before(start) && !day.After(today) {
			created++
		}

		if !t.IsCompleted() || t.CompletedAt() == nil {
			continue
		}
		day = dateOf(t.CompletedAt().UTC())
		if day.Before(start) || day.After(today) {
			continue
		}
		w.DailyCompleted[formatDate(day)]++
		w.TotalCompleted++
		w.TotalTimeMinutes += timeSpent(t)
		w.ByPriority[t.Priority().String()]++
	}

	w.AvgDailyCompleted = round2(float64(w.TotalCompleted) / weeklyWindowDays)
	w.AvgDailyTime = round2(float64(w.TotalTimeMinutes) / weeklyWindowDays)
	if created > 0 {
		w.CompletionRate = round1(float64(w.TotalCompleted) / float64(created) * 100)
	}

	if w.TotalCompleted > 0 {
		best := -1
		for i := 0; i < weeklyWindowDays; i++ {
			key := formatDate(start.AddDate(0, 0, i))
			if w.DailyCompleted[key] > best {
				best = w.DailyCompleted[key]
				w.MostProductiveDay = key
			}
		}
	}
	return w
}

// trend buckets task creation by day over the window and derives a
// direction by comparing the first and last week of daily completion
// rates.
func (h *ProductivityStatsHandler) trend(all []*task.Task, today time.Time, days int) ([]DayActivity, string) {
	start := today.AddDate(0, 0, -(days - 1))

	byDay := make(map[string]*DayActivity, days)
	order := make([]string, 0, days)
	for i := 0; i < days; i++ {
		key := formatDate(start.AddDate(0, 0, i))
		byDay[key] = &DayActivity{Date: key}
		order = append(order, key)
	}

	for _, t := range all {
		d, ok := byDay[formatDate(dateOf(t.CreatedAt().UTC()))]
		if !ok {
			continue
		}
		d.TasksCreated++
		d.TotalTime += t.EstimatedTime()
		if t.IsCompleted() {
			d.TasksCompleted++
		}
	}

	var rates []float64
	points := make([]DayActivity, 0, days)
	for _, key := range order {
		d := byDay[key]
		if d.TasksCreated > 0 {
			d.CompletionRate = round1(float64(d.TasksCompleted) / float64(d.TasksCreated) * 100)
			rates = append(rates, d.CompletionRate)
		}
		points = append(points, *d)
	}
	return points, trendDirection(rates)
}

func trendDirection(rates []float64) string {
	if len(rates) < 2 {
		return TrendInsufficientData
	}

	head := rates
	if len(head) > weeklyWindowDays {
		head = head[:weeklyWindowDays]
	}
	tail := rates
	if len(tail) > weeklyWindowDays {
		tail = tail[len(tail)-weeklyWindowDays:]
	}

	earlier := average(head)
	recent := average(tail)
	switch {
	case recent > earlier+5:
		return TrendImproving
	case recent < earlier-5:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func timeAccuracy(all []*task.Task) TimeAccuracy {
	var acc TimeAccuracy
	sum := 0.0
	for _, t := range all {
		if !t.IsCompleted() || t.ActualTime() <= 0 || t.EstimatedTime() <= 0 {
			continue
		}
		acc.TasksMeasured++
		sum += float64(t.ActualTime()) / float64(t.EstimatedTime()) * 100
		acc.TotalVariance += t.ActualTime() - t.EstimatedTime()
	}
	if acc.TasksMeasured > 0 {
		acc.AvgAccuracyPct = round1(sum / float64(acc.TasksMeasured))
	}
	return acc
}

// timeSpent prefers the recorded actual minutes over the estimate.
func timeSpent(t *task.Task) int {
	if t.ActualTime() > 0 {
		return t.ActualTime()
	}
	return t.EstimatedTime()
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func formatDate(t time.Time) string {
	return t.Format(plannerdomain.DeadlineLayout)
}

func average(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
