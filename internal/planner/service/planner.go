package service

import (
	"log/slog"
	"time"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

// Planner is the engine facade. It bundles the scorer, sorter, allocator,
// splitter, and planners behind the call-style operations consumed by the
// API and CLI adapters. A Planner is stateless apart from its configuration
// and safe for concurrent use.
type Planner struct {
	scorer         *Scorer
	sorter         *Sorter
	allocator      *Allocator
	splitter       *Splitter
	dayPlanner     *DayPlanner
	sessionPlanner *SessionPlanner
	analyzer       *Analyzer
	recommender    *Recommender
	advisor        BreakAdvisor
	now            func() time.Time
	logger         *slog.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithClock overrides the time source used to resolve "today".
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// WithBreakAdvisor overrides the break suggestion provider.
func WithBreakAdvisor(advisor BreakAdvisor) Option {
	return func(p *Planner) { p.advisor = advisor }
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) { p.logger = logger }
}

// WithScorerConfig overrides the scoring constants.
func WithScorerConfig(cfg ScorerConfig) Option {
	return func(p *Planner) { p.scorer = NewScorer(cfg) }
}

// NewPlanner creates a planner with the canonical configuration.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{
		scorer:  NewScorer(DefaultScorerConfig()),
		advisor: NewRotatingBreakAdvisor(),
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.sorter = NewSorter(p.scorer)
	p.allocator = NewAllocator(MinUsableChunk, p.advisor, p.logger)
	p.splitter = NewSplitter()
	p.dayPlanner = NewDayPlanner(p.sorter, p.allocator)
	p.sessionPlanner = NewSessionPlanner(p.sorter)
	p.analyzer = NewAnalyzer()
	p.recommender = NewRecommender()
	return p
}

// Today returns the current calendar day from the planner's clock.
func (p *Planner) Today() time.Time {
	return p.now()
}

// GenerateSchedule produces a flat allocation of tasks against a single
// time budget. Malformed task fields are defaulted; a non-positive budget
// yields an empty schedule with every task unscheduled.
func (p *Planner) GenerateSchedule(tasks []domain.Task, budget int) (domain.Schedule, []domain.Task) {
	sanitized := domain.SanitizeTasks(tasks)
	if budget <= 0 || len(sanitized) == 0 {
		return domain.Schedule{}, sanitized
	}
	sorted := p.sorter.Sort(sanitized, p.Today())
	return p.allocator.Allocate(sorted, budget)
}

// PlanDay produces a multi-slot plan. An empty slot list uses the default
// morning/afternoon/evening slots.
func (p *Planner) PlanDay(tasks []domain.Task, slots []domain.Slot) domain.DayPlan {
	return p.dayPlanner.Plan(tasks, slots, p.Today())
}

// PlanSessions produces a focus-session plan with interleaved breaks.
func (p *Planner) PlanSessions(tasks []domain.Task, sessionLength, breakLength int) []domain.Session {
	return p.sessionPlanner.Plan(tasks, sessionLength, breakLength, p.Today())
}

// Split decomposes a task into bounded sub-sessions.
func (p *Planner) Split(task domain.Task, maxSessionMinutes int) []domain.Task {
	return p.splitter.Split(task, maxSessionMinutes)
}

// Diagnostics computes efficiency and quality metrics for a schedule.
func (p *Planner) Diagnostics(schedule domain.Schedule, budget int) domain.Diagnostics {
	return p.analyzer.Analyze(schedule, budget)
}

// Recommendations produces advisory strings for a task set.
func (p *Planner) Recommendations(tasks []domain.Task) []string {
	return p.recommender.Recommend(tasks, p.Today())
}

// CompletionStats aggregates the completed subset of the task set.
func (p *Planner) CompletionStats(tasks []domain.Task) domain.CompletionStats {
	var completed []domain.Task
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		}
	}
	return p.analyzer.CompletionStats(completed)
}

// EstimateCompletion projects a completion date for the active workload.
func (p *Planner) EstimateCompletion(tasks []domain.Task, efficiency float64) domain.CompletionEstimate {
	return p.analyzer.EstimateCompletion(domain.ActiveTasks(tasks), efficiency, p.Today())
}

// BreakSuggestion returns the advisory text for a scheduled task's break.
func (p *Planner) BreakSuggestion(task domain.ScheduledTask) string {
	return p.advisor.Suggestion(task)
}
