package domain

import "maps"

// DateLayout is the calendar-day key format used throughout streak history.
const DateLayout = "2006-01-02"

// StreakRecord is the persisted daily-interaction state of a single user.
//
// History is keyed by calendar-day strings in DateLayout. When
// LastInteractionDate is non-empty, History[LastInteractionDate] is true.
// The JSON field names match the format already stored on devices.
type StreakRecord struct {
	CurrentStreak       int             `json:"currentStreak"`
	LastInteractionDate string          `json:"lastInteractionDate"`
	History             map[string]bool `json:"history"`
}

// NewStreakRecord returns the default record used before any interaction.
func NewStreakRecord() *StreakRecord {
	return &StreakRecord{History: map[string]bool{}}
}

// Clone returns a deep copy of the record.
func (r *StreakRecord) Clone() *StreakRecord {
	if r == nil {
		return NewStreakRecord()
	}
	c := *r
	c.History = make(map[string]bool, len(r.History))
	maps.Copy(c.History, r.History)
	return &c
}

// Normalize repairs a decoded record so callers never see a nil History
// or a negative streak.
func (r *StreakRecord) Normalize() {
	if r.History == nil {
		r.History = map[string]bool{}
	}
	if r.CurrentStreak < 0 {
		r.CurrentStreak = 0
	}
}

// InteractionOutcome classifies the effect of recording an interaction.
type InteractionOutcome string

// Valid interaction outcomes.
const (
	OutcomeAlreadyDone InteractionOutcome = "already-done"
	OutcomeIncremented InteractionOutcome = "incremented"
	OutcomeReset       InteractionOutcome = "reset"
)

// InteractionResult is returned by the streak engine after recording an interaction.
type InteractionResult struct {
	Type          InteractionOutcome `json:"type"`
	CurrentStreak int                `json:"currentStreak"`
	IsNewDay      bool               `json:"isNewDay"`
	// Degraded reports that storage could not be read or written and the
	// result was computed without durable state.
	Degraded bool `json:"degraded,omitempty"`
}

// WeeklyViewEntry is one day of the Monday-first current-week strip.
type WeeklyViewEntry struct {
	Date      string `json:"date"`
	DayLabel  string `json:"dayLabel"`
	Completed bool   `json:"completed"`
	IsToday   bool   `json:"isToday"`
	IsFuture  bool   `json:"isFuture"`
}

// CalendarDay is one cell of a month grid. Padding cells carry no date.
type CalendarDay struct {
	Date      string `json:"date,omitempty"`
	DayNumber int    `json:"dayNumber,omitempty"`
	Completed bool   `json:"completed"`
	IsToday   bool   `json:"isToday"`
	Padding   bool   `json:"padding,omitempty"`
}

// MonthView is a Monday-first month grid.
type MonthView struct {
	MonthName string        `json:"monthName"`
	Year      int           `json:"year"`
	Days      []CalendarDay `json:"days"`
}
