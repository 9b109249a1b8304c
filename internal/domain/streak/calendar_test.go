package streak

import (
	"testing"
	"time"

	"github.com/lioapp/lio-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, value string, loc *time.Location) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	require.NoError(t, err)
	return parsed
}

func TestApplyInteraction(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		record         *domain.StreakRecord
		now            string
		expectedType   domain.InteractionOutcome
		expectedStreak int
	}{
		{
			name:           "first ever interaction starts at one",
			record:         domain.NewStreakRecord(),
			now:            "2025-03-05 08:00",
			expectedType:   domain.OutcomeReset,
			expectedStreak: 1,
		},
		{
			name:           "nil record behaves like default",
			record:         nil,
			now:            "2025-03-05 08:00",
			expectedType:   domain.OutcomeReset,
			expectedStreak: 1,
		},
		{
			name: "interaction yesterday increments",
			record: &domain.StreakRecord{
				CurrentStreak:       4,
				LastInteractionDate: "2025-03-04",
				History:             map[string]bool{"2025-03-04": true},
			},
			now:            "2025-03-05 23:59",
			expectedType:   domain.OutcomeIncremented,
			expectedStreak: 5,
		},
		{
			name: "one missed day resets to one",
			record: &domain.StreakRecord{
				CurrentStreak:       9,
				LastInteractionDate: "2025-03-03",
				History:             map[string]bool{"2025-03-03": true},
			},
			now:            "2025-03-05 00:00",
			expectedType:   domain.OutcomeReset,
			expectedStreak: 1,
		},
		{
			name: "month boundary counts as consecutive",
			record: &domain.StreakRecord{
				CurrentStreak:       2,
				LastInteractionDate: "2025-02-28",
				History:             map[string]bool{"2025-02-28": true},
			},
			now:            "2025-03-01 10:00",
			expectedType:   domain.OutcomeIncremented,
			expectedStreak: 3,
		},
		{
			name: "year boundary counts as consecutive",
			record: &domain.StreakRecord{
				CurrentStreak:       1,
				LastInteractionDate: "2024-12-31",
				History:             map[string]bool{"2024-12-31": true},
			},
			now:            "2025-01-01 00:01",
			expectedType:   domain.OutcomeIncremented,
			expectedStreak: 2,
		},
		{
			name: "future last date resets",
			record: &domain.StreakRecord{
				CurrentStreak:       3,
				LastInteractionDate: "2025-03-07",
				History:             map[string]bool{"2025-03-07": true},
			},
			now:            "2025-03-05 12:00",
			expectedType:   domain.OutcomeReset,
			expectedStreak: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			now := at(t, tc.now, time.UTC)

			next, outcome := applyInteraction(tc.record, now)

			assert.Equal(t, tc.expectedType, outcome)
			require.NotNil(t, next)
			assert.Equal(t, tc.expectedStreak, next.CurrentStreak)
			assert.Equal(t, DateKey(now), next.LastInteractionDate)
			assert.True(t, next.History[DateKey(now)])
		})
	}
}

func TestApplyInteraction_SameDayIsIdempotent(t *testing.T) {
	t.Parallel()

	rec := &domain.StreakRecord{
		CurrentStreak:       3,
		LastInteractionDate: "2025-03-05",
		History:             map[string]bool{"2025-03-05": true},
	}

	next, outcome := applyInteraction(rec, at(t, "2025-03-05 21:30", time.UTC))

	assert.Equal(t, domain.OutcomeAlreadyDone, outcome)
	assert.Nil(t, next)
	assert.Equal(t, 3, rec.CurrentStreak, "input must not be mutated")
}

func TestApplyInteraction_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	rec := &domain.StreakRecord{
		CurrentStreak:       1,
		LastInteractionDate: "2025-03-04",
		History:             map[string]bool{"2025-03-04": true},
	}

	next, _ := applyInteraction(rec, at(t, "2025-03-05 09:00", time.UTC))

	require.NotNil(t, next)
	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Len(t, rec.History, 1)
	assert.Len(t, next.History, 2)
}

func TestApplyInteraction_ConsecutiveDaysBuildRunLength(t *testing.T) {
	t.Parallel()

	rec := domain.NewStreakRecord()
	start := at(t, "2025-02-20 07:00", time.UTC)

	for i := 0; i < 15; i++ {
		now := dayAt(start, i)
		next, outcome := applyInteraction(rec, now)
		require.NotNil(t, next)
		if i == 0 {
			assert.Equal(t, domain.OutcomeReset, outcome)
		} else {
			assert.Equal(t, domain.OutcomeIncremented, outcome)
		}
		rec = next

		// A second interaction on the same day changes nothing.
		again, outcome := applyInteraction(rec, now.Add(time.Hour))
		assert.Nil(t, again)
		assert.Equal(t, domain.OutcomeAlreadyDone, outcome)
	}

	assert.Equal(t, 15, rec.CurrentStreak)
	assert.Len(t, rec.History, 15)
}

func TestApplyInteraction_AcrossDaylightSavingStart(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	rec := &domain.StreakRecord{
		CurrentStreak:       2,
		LastInteractionDate: "2025-03-09",
		History:             map[string]bool{"2025-03-09": true},
	}

	// 2025-03-09 is only 23 hours long in New York.
	next, outcome := applyInteraction(rec, at(t, "2025-03-10 00:30", loc))

	assert.Equal(t, domain.OutcomeIncremented, outcome)
	require.NotNil(t, next)
	assert.Equal(t, 3, next.CurrentStreak)
}

func TestWeeklyView(t *testing.T) {
	t.Parallel()

	labels := NewDefaultLabels()
	rec := &domain.StreakRecord{
		CurrentStreak:       2,
		LastInteractionDate: "2025-03-04",
		History: map[string]bool{
			"2025-03-03": true,
			"2025-03-04": true,
			"2025-02-28": true,
		},
	}

	testCases := []struct {
		name       string
		now        string
		todayIndex int
	}{
		{name: "wednesday", now: "2025-03-05 10:00", todayIndex: 2},
		{name: "monday", now: "2025-03-03 00:00", todayIndex: 0},
		{name: "sunday goes back six days", now: "2025-03-09 23:59", todayIndex: 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			entries := weeklyView(rec, at(t, tc.now, time.UTC), labels)

			require.Len(t, entries, 7)
			assert.Equal(t, "2025-03-03", entries[0].Date)
			assert.Equal(t, "2025-03-09", entries[6].Date)
			for i, entry := range entries {
				assert.Equal(t, labels.Weekdays[i], entry.DayLabel)
				assert.Equal(t, i == tc.todayIndex, entry.IsToday, "entry %d", i)
				assert.Equal(t, i > tc.todayIndex, entry.IsFuture, "entry %d", i)
			}
			assert.True(t, entries[0].Completed)
			assert.True(t, entries[1].Completed)
			assert.False(t, entries[2].Completed)
		})
	}
}

func TestWeeklyView_SpansMonthBoundary(t *testing.T) {
	t.Parallel()

	entries := weeklyView(domain.NewStreakRecord(), at(t, "2025-03-01 12:00", time.UTC), NewDefaultLabels())

	require.Len(t, entries, 7)
	assert.Equal(t, "2025-02-24", entries[0].Date)
	assert.Equal(t, "2025-03-02", entries[6].Date)
	assert.True(t, entries[5].IsToday)
}

func TestFullCalendar(t *testing.T) {
	t.Parallel()

	labels := NewDefaultLabels()
	rec := &domain.StreakRecord{
		CurrentStreak:       1,
		LastInteractionDate: "2025-03-05",
		History: map[string]bool{
			"2025-01-15": true,
			"2025-03-05": true,
			"not-a-date": true,
		},
	}

	months := fullCalendar(rec, at(t, "2025-03-05 09:00", time.UTC), labels)

	require.Len(t, months, 3)
	assert.Equal(t, "Marzo", months[0].MonthName)
	assert.Equal(t, "Febrero", months[1].MonthName)
	assert.Equal(t, "Enero", months[2].MonthName)
	for _, m := range months {
		assert.Equal(t, 2025, m.Year)
	}

	march := months[0]
	// 2025-03-01 is a Saturday: five padding cells.
	require.Len(t, march.Days, 5+31)
	for i := 0; i < 5; i++ {
		assert.True(t, march.Days[i].Padding)
		assert.Empty(t, march.Days[i].Date)
	}
	assert.Equal(t, 1, march.Days[5].DayNumber)
	assert.Equal(t, "2025-03-01", march.Days[5].Date)
	fifth := march.Days[5+4]
	assert.Equal(t, "2025-03-05", fifth.Date)
	assert.True(t, fifth.IsToday)
	assert.True(t, fifth.Completed)

	february := months[1]
	assert.Len(t, february.Days, 5+28)

	january := months[2]
	// 2025-01-01 is a Wednesday: two padding cells.
	require.Len(t, january.Days, 2+31)
	assert.True(t, january.Days[2+14].Completed)
	assert.Equal(t, "2025-01-15", january.Days[2+14].Date)
}

func TestFullCalendar_EmptyHistoryYieldsCurrentMonth(t *testing.T) {
	t.Parallel()

	months := fullCalendar(domain.NewStreakRecord(), at(t, "2024-02-10 09:00", time.UTC), NewDefaultLabels())

	require.Len(t, months, 1)
	assert.Equal(t, "Febrero", months[0].MonthName)
	assert.Equal(t, 2024, months[0].Year)
	// Leap year, and 2024-02-01 is a Thursday.
	assert.Len(t, months[0].Days, 3+29)
}

func TestFullCalendar_FutureHistoryIsIgnoredForStart(t *testing.T) {
	t.Parallel()

	rec := &domain.StreakRecord{History: map[string]bool{"2025-08-01": true}}

	months := fullCalendar(rec, at(t, "2025-03-05 09:00", time.UTC), NewDefaultLabels())

	require.Len(t, months, 1)
	assert.Equal(t, "Marzo", months[0].MonthName)
}

func TestFullCalendar_SpansYears(t *testing.T) {
	t.Parallel()

	rec := &domain.StreakRecord{History: map[string]bool{"2024-11-30": true}}

	months := fullCalendar(rec, at(t, "2025-01-02 09:00", time.UTC), NewDefaultLabels())

	require.Len(t, months, 3)
	assert.Equal(t, "Enero", months[0].MonthName)
	assert.Equal(t, 2025, months[0].Year)
	assert.Equal(t, "Diciembre", months[1].MonthName)
	assert.Equal(t, 2024, months[1].Year)
	assert.Equal(t, "Noviembre", months[2].MonthName)
	// 2024-12-01 is a Sunday: six padding cells.
	assert.Len(t, months[1].Days, 6+31)
}

func TestLongestRun(t *testing.T) {
	t.Parallel()

	rec := &domain.StreakRecord{History: map[string]bool{
		"2025-01-01": true,
		"2025-01-02": true,
		"2025-01-03": true,
		"2025-01-05": true,
		"2025-01-06": true,
		"2025-01-07": false,
		"garbage":    true,
	}}

	assert.Equal(t, 3, longestRun(rec, time.UTC))
	assert.Equal(t, 0, longestRun(domain.NewStreakRecord(), time.UTC))
	assert.Equal(t, 0, longestRun(nil, time.UTC))
}
