// Package service implements the scheduling engine: priority scoring,
// greedy time allocation, task splitting, multi-slot and focus-session
// planning, and schedule diagnostics. Every operation is a pure function of
// its inputs; the package holds no mutable state.
package service

import (
	"time"

	"github.com/taskflowhq/taskflow/internal/planner/domain"
)

// ScorerConfig tunes how priority, urgency, and duration combine into a
// composite score. The defaults keep the documented dominance rule: a
// priority tier can never be overridden by urgency, and urgency can never
// be overridden by the duration term.
type ScorerConfig struct {
	// Base values per priority tier. Adjacent tiers must stay further
	// apart than MaxUrgencyBoost plus DurationBonusMax.
	HighBase   float64
	MediumBase float64
	LowBase    float64

	// Urgency boosts by deadline proximity, strictly ordered
	// overdue > due today > due within 3 days > due within 7 days.
	OverdueBoost  float64
	DueTodayBoost float64
	DueSoonBoost  float64 // within 3 days
	DueWeekBoost  float64 // within 7 days

	// DurationBonusMax caps the shorter-task tie-break. It must stay below
	// the smallest gap between adjacent urgency boosts.
	DurationBonusMax float64

	// DurationCeiling is the estimate (minutes) at which the duration
	// bonus reaches zero.
	DurationCeiling int
}

// DefaultScorerConfig returns the canonical scoring constants.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		HighBase:         200,
		MediumBase:       100,
		LowBase:          10,
		OverdueBoost:     60,
		DueTodayBoost:    45,
		DueSoonBoost:     30,
		DueWeekBoost:     15,
		DurationBonusMax: 10,
		DurationCeiling:  480,
	}
}

// Scorer converts a task into a single orderable score. Higher scores
// schedule sooner.
type Scorer struct {
	config ScorerConfig
}

// NewScorer creates a scorer with the given configuration.
func NewScorer(cfg ScorerConfig) *Scorer {
	return &Scorer{config: cfg}
}

// Score computes the composite priority score for a task as of the given
// day. It is a pure function of the task fields and the date: identical
// inputs always produce the identical score.
func (s *Scorer) Score(task domain.Task, today time.Time) float64 {
	return s.tierBase(task.Priority) + s.urgencyBoost(task.Deadline, today) + s.durationBonus(task.EstimatedTime)
}

func (s *Scorer) tierBase(p domain.Priority) float64 {
	switch p {
	case domain.PriorityHigh:
		return s.config.HighBase
	case domain.PriorityLow:
		return s.config.LowBase
	default:
		return s.config.MediumBase
	}
}

// urgencyBoost returns the deadline proximity term. An unset deadline
// (including one recovered from an unparseable date string) contributes
// nothing.
func (s *Scorer) urgencyBoost(d *domain.Deadline, today time.Time) float64 {
	if d == nil || d.IsZero() {
		return 0
	}

	days := d.DaysUntil(today)
	switch {
	case days < 0:
		return s.config.OverdueBoost
	case days == 0:
		return s.config.DueTodayBoost
	case days <= 3:
		return s.config.DueSoonBoost
	case days <= 7:
		return s.config.DueWeekBoost
	default:
		return 0
	}
}

// durationBonus favors shorter tasks. Its contribution is bounded by
// DurationBonusMax so it can only break ties within the same priority and
// urgency tier.
func (s *Scorer) durationBonus(estimated int) float64 {
	ceiling := s.config.DurationCeiling
	if ceiling <= 0 || estimated <= 0 {
		return 0
	}
	if estimated > ceiling {
		estimated = ceiling
	}
	return s.config.DurationBonusMax * (1 - float64(estimated)/float64(ceiling))
}
