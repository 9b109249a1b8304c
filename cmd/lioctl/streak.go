package main

import (
	"fmt"

	"github.com/lioapp/lio-api/internal/app"
)

// UserFlags identify whose data a command operates on.
type UserFlags struct {
	User     string `help:"User ID." required:""`
	Timezone string `help:"IANA timezone for calendar days; defaults to the profile or server zone." name:"tz"`
}

// StreakRecordCmd records an interaction for today.
type StreakRecordCmd struct {
	UserFlags
}

func (c *StreakRecordCmd) Run(ctx *Context) error {
	return withApp(ctx, func(a *app.App) error {
		loc := a.Timezones.Resolve(ctx, c.User, c.Timezone)
		result := a.Streaks.RecordInteraction(ctx, c.User, loc)
		if ctx.JSON {
			return writeJSON(ctx.Out, result)
		}
		_, err := fmt.Fprintf(ctx.Out, "%s: streak %d%s\n", result.Type, result.CurrentStreak, degradedNote(result.Degraded))
		return err
	})
}

// StreakShowCmd prints the streak summary.
type StreakShowCmd struct {
	UserFlags
}

func (c *StreakShowCmd) Run(ctx *Context) error {
	return withApp(ctx, func(a *app.App) error {
		loc := a.Timezones.Resolve(ctx, c.User, c.Timezone)
		summary := a.Streaks.Current(ctx, c.User, loc)
		if ctx.JSON {
			return writeJSON(ctx.Out, summary.Value)
		}
		s := summary.Value
		_, err := fmt.Fprintf(ctx.Out, "current %d, longest %d, completed today: %t%s\n",
			s.CurrentStreak, s.LongestStreak, s.CompletedToday, degradedNote(summary.Degraded()))
		return err
	})
}

// StreakWeekCmd prints the Monday-first week strip.
type StreakWeekCmd struct {
	UserFlags
}

func (c *StreakWeekCmd) Run(ctx *Context) error {
	return withApp(ctx, func(a *app.App) error {
		loc := a.Timezones.Resolve(ctx, c.User, c.Timezone)
		week := a.Streaks.WeeklyView(ctx, c.User, loc)
		if ctx.JSON {
			return writeJSON(ctx.Out, week.Value)
		}
		for _, day := range week.Value {
			if _, err := fmt.Fprintf(ctx.Out, "%s %s %s\n", day.DayLabel, day.Date, dayMark(day.Completed, day.IsToday)); err != nil {
				return err
			}
		}
		return nil
	})
}

// StreakCalendarCmd prints every month with history, newest first.
type StreakCalendarCmd struct {
	UserFlags
}

func (c *StreakCalendarCmd) Run(ctx *Context) error {
	return withApp(ctx, func(a *app.App) error {
		loc := a.Timezones.Resolve(ctx, c.User, c.Timezone)
		months := a.Streaks.FullCalendar(ctx, c.User, loc)
		if ctx.JSON {
			return writeJSON(ctx.Out, months.Value)
		}
		for _, month := range months.Value {
			completed := 0
			for _, day := range month.Days {
				if day.Completed {
					completed++
				}
			}
			if _, err := fmt.Fprintf(ctx.Out, "%s %d: %d days completed\n", month.MonthName, month.Year, completed); err != nil {
				return err
			}
		}
		return nil
	})
}

func dayMark(completed, today bool) string {
	switch {
	case completed:
		return "[x]"
	case today:
		return "[ ] today"
	default:
		return "[ ]"
	}
}

func degradedNote(degraded bool) string {
	if degraded {
		return " (storage unavailable)"
	}
	return ""
}
