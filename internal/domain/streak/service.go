package streak

import (
	"time"

	"github.com/lioapp/lio-api/internal/domain"
)

// Summary describes the streak state without mutating it.
type Summary struct {
	CurrentStreak       int    `json:"currentStreak"`
	LongestStreak       int    `json:"longestStreak"`
	LastInteractionDate string `json:"lastInteractionDate,omitempty"`
	CompletedToday      bool   `json:"completedToday"`
	// Active is false once a full day has been missed; the stored streak
	// is only reset by the next interaction.
	Active bool `json:"active"`
}

// Service defines the pure streak calculations. All methods interpret now
// in its own location: the calendar day of now is "today".
type Service interface {
	// RecordInteraction applies a same-day interaction. The returned record is
	// nil when nothing changed.
	RecordInteraction(rec *domain.StreakRecord, now time.Time) (*domain.StreakRecord, domain.InteractionOutcome)

	// WeeklyView returns exactly seven entries, Monday through Sunday.
	WeeklyView(rec *domain.StreakRecord, now time.Time) []domain.WeeklyViewEntry

	// FullCalendar returns month grids newest first.
	FullCalendar(rec *domain.StreakRecord, now time.Time) []domain.MonthView

	// Summarize reports the current and longest streak.
	Summarize(rec *domain.StreakRecord, now time.Time) Summary
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	labels Labels
}

// NewDefaultService creates a streak service with the app's default labels.
func NewDefaultService() Service {
	return &defaultService{labels: NewDefaultLabels()}
}

// NewServiceWithLabels creates a streak service with custom labels.
func NewServiceWithLabels(labels Labels) Service {
	return &defaultService{labels: labels}
}

func (s *defaultService) RecordInteraction(
	rec *domain.StreakRecord,
	now time.Time,
) (*domain.StreakRecord, domain.InteractionOutcome) {
	return applyInteraction(rec, now)
}

func (s *defaultService) WeeklyView(rec *domain.StreakRecord, now time.Time) []domain.WeeklyViewEntry {
	return weeklyView(rec, now, s.labels)
}

func (s *defaultService) FullCalendar(rec *domain.StreakRecord, now time.Time) []domain.MonthView {
	return fullCalendar(rec, now, s.labels)
}

func (s *defaultService) Summarize(rec *domain.StreakRecord, now time.Time) Summary {
	if rec == nil {
		rec = domain.NewStreakRecord()
	}
	today := DateKey(now)
	yesterday := DateKey(dayAt(now, -1))

	active := rec.LastInteractionDate == today || rec.LastInteractionDate == yesterday
	longest := longestRun(rec, now.Location())
	if rec.CurrentStreak > longest {
		longest = rec.CurrentStreak
	}

	return Summary{
		CurrentStreak:       rec.CurrentStreak,
		LongestStreak:       longest,
		LastInteractionDate: rec.LastInteractionDate,
		CompletedToday:      rec.LastInteractionDate == today,
		Active:              active,
	}
}
