package streak

import (
	"time"

	"github.com/lioapp/lio-api/internal/domain"
)

// DateKey formats t as a calendar-day key in t's own location.
func DateKey(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// dayAt returns noon of the calendar day that is offset days away from t's
// day, in t's location. Anchoring at noon keeps day arithmetic stable across
// DST transitions, where a day may be 23 or 25 hours long.
func dayAt(t time.Time, offset int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+offset, 12, 0, 0, 0, t.Location())
}

// mondayOffset returns how many days t is past the most recent Monday.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// applyInteraction records a same-day interaction against a copy of rec.
//
// The returned record is nil when the outcome is OutcomeAlreadyDone, since
// nothing changed and nothing needs to be persisted.
//
// Algorithm behavior:
//   - last interaction today: no change
//   - last interaction yesterday: streak grows by one
//   - anything else, including an empty record: streak restarts at 1
func applyInteraction(rec *domain.StreakRecord, now time.Time) (*domain.StreakRecord, domain.InteractionOutcome) {
	today := DateKey(now)
	yesterday := DateKey(dayAt(now, -1))

	if rec != nil && rec.LastInteractionDate == today {
		return nil, domain.OutcomeAlreadyDone
	}

	next := rec.Clone()
	outcome := domain.OutcomeReset
	if next.LastInteractionDate == yesterday {
		next.CurrentStreak++
		outcome = domain.OutcomeIncremented
	} else {
		next.CurrentStreak = 1
	}
	next.LastInteractionDate = today
	next.History[today] = true

	return next, outcome
}

// weeklyView builds the Monday-to-Sunday strip for the week containing now.
func weeklyView(rec *domain.StreakRecord, now time.Time, labels Labels) []domain.WeeklyViewEntry {
	today := DateKey(now)
	start := -mondayOffset(now)

	entries := make([]domain.WeeklyViewEntry, 0, 7)
	for i := 0; i < 7; i++ {
		date := DateKey(dayAt(now, start+i))
		entries = append(entries, domain.WeeklyViewEntry{
			Date:      date,
			DayLabel:  labels.Weekdays[i],
			Completed: completed(rec, date),
			IsToday:   date == today,
			// Keys are zero-padded, so lexicographic order is chronological.
			IsFuture: date > today,
		})
	}
	return entries
}

// fullCalendar builds one month grid per month from the month of the earliest
// history entry through the current month, newest month first.
func fullCalendar(rec *domain.StreakRecord, now time.Time, labels Labels) []domain.MonthView {
	loc := now.Location()
	current := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, loc)

	start := current
	if earliest, ok := earliestHistoryDay(rec, loc); ok {
		first := time.Date(earliest.Year(), earliest.Month(), 1, 12, 0, 0, 0, loc)
		if first.Before(current) {
			start = first
		}
	}

	today := DateKey(now)
	var months []domain.MonthView
	for month := current; !month.Before(start); month = month.AddDate(0, -1, 0) {
		months = append(months, monthView(rec, month, today, labels))
	}
	return months
}

// monthView builds the grid for the month containing first, which must be
// noon on the first day of that month.
func monthView(rec *domain.StreakRecord, first time.Time, today string, labels Labels) domain.MonthView {
	y, m, _ := first.Date()
	padding := mondayOffset(first)
	daysInMonth := time.Date(y, m+1, 0, 12, 0, 0, 0, first.Location()).Day()

	days := make([]domain.CalendarDay, 0, padding+daysInMonth)
	for i := 0; i < padding; i++ {
		days = append(days, domain.CalendarDay{Padding: true})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := DateKey(time.Date(y, m, d, 12, 0, 0, 0, first.Location()))
		days = append(days, domain.CalendarDay{
			Date:      date,
			DayNumber: d,
			Completed: completed(rec, date),
			IsToday:   date == today,
		})
	}

	return domain.MonthView{
		MonthName: labels.Months[m-1],
		Year:      y,
		Days:      days,
	}
}

// earliestHistoryDay returns the earliest parseable history key.
// Malformed keys are ignored.
func earliestHistoryDay(rec *domain.StreakRecord, loc *time.Location) (time.Time, bool) {
	if rec == nil {
		return time.Time{}, false
	}

	var earliest time.Time
	found := false
	for key := range rec.History {
		day, err := time.ParseInLocation(domain.DateLayout, key, loc)
		if err != nil {
			continue
		}
		if !found || day.Before(earliest) {
			earliest = day
			found = true
		}
	}
	return earliest, found
}

// longestRun returns the length of the longest run of consecutive completed days.
func longestRun(rec *domain.StreakRecord, loc *time.Location) int {
	if rec == nil {
		return 0
	}

	best := 0
	for key, done := range rec.History {
		if !done {
			continue
		}
		day, err := time.ParseInLocation(domain.DateLayout, key, loc)
		if err != nil {
			continue
		}
		// Only start counting at the first day of a run.
		if rec.History[DateKey(dayAt(day, -1))] {
			continue
		}
		run := 1
		for rec.History[DateKey(dayAt(day, run))] {
			run++
		}
		if run > best {
			best = run
		}
	}
	return best
}

func completed(rec *domain.StreakRecord, date string) bool {
	return rec != nil && rec.History[date]
}
