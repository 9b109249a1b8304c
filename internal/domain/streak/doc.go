// Package streak implements the pure daily-streak calculations: recording a
// once-per-day interaction, the Monday-first weekly strip and the month-by-month
// calendar. "Today" is always the calendar day of the supplied time in its own
// location; no function here reads the wall clock.
package streak
