package service

import (
	"context"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/lioapp/lio-api/internal/domain"
	"github.com/lioapp/lio-api/internal/domain/streak"
	"github.com/lioapp/lio-api/internal/platform/logger"
	"github.com/lioapp/lio-api/internal/repository"
)

const streakLockStripes = 64

// StreakEngine records daily interactions and derives the streak views.
type StreakEngine struct {
	store  StreakStore
	calc   streak.Service
	clock  Clock
	logger *slog.Logger

	// Interactions for one user are serialized within this process.
	locks [streakLockStripes]sync.Mutex
}

// NewStreakEngine creates a StreakEngine.
// It panics if store is nil. A nil calc, clock or logger selects the default.
func NewStreakEngine(store StreakStore, calc streak.Service, clock Clock, logger *slog.Logger) *StreakEngine {
	if store == nil {
		panic("streak store cannot be nil")
	}
	if calc == nil {
		calc = streak.NewDefaultService()
	}
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StreakEngine{
		store:  store,
		calc:   calc,
		clock:  clock,
		logger: logger.With(slog.String("component", "streak_engine")),
	}
}

// RecordInteraction registers today's interaction for userID, today being
// the calendar day of the current time in loc. It never fails: storage
// problems are logged and reported through InteractionResult.Degraded.
// A record that could not be read is never overwritten; one that was read
// but cannot be decoded is replaced by the fresh record.
func (e *StreakEngine) RecordInteraction(
	ctx context.Context,
	userID string,
	loc *time.Location,
) domain.InteractionResult {
	log := logger.FromContextOrDefault(ctx, e.logger)
	now := e.now(loc)

	mu := e.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	loaded := e.store.Load(ctx, userID)
	updated, outcome := e.calc.RecordInteraction(loaded.Value, now)

	result := domain.InteractionResult{
		Type:     outcome,
		IsNewDay: outcome != domain.OutcomeAlreadyDone,
		Degraded: loaded.Degraded(),
	}
	if updated == nil {
		result.CurrentStreak = loaded.Value.CurrentStreak
		return result
	}
	result.CurrentStreak = updated.CurrentStreak

	if loaded.Unavailable() {
		log.WarnContext(ctx, "streak record unreadable, interaction not persisted",
			slog.String("user_id", userID),
			slog.String("error", loaded.Err.Error()))
		return result
	}
	if loaded.Corrupt() {
		log.WarnContext(ctx, "replacing corrupt streak record",
			slog.String("user_id", userID),
			slog.String("error", loaded.Err.Error()))
	}

	if err := e.store.Save(ctx, userID, updated); err != nil {
		log.ErrorContext(ctx, "failed to persist streak record",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		result.Degraded = true
		return result
	}

	log.InfoContext(ctx, "interaction recorded",
		slog.String("user_id", userID),
		slog.String("outcome", string(outcome)),
		slog.Int("current_streak", result.CurrentStreak))
	return result
}

// WeeklyView returns the Monday-to-Sunday view of the current week.
func (e *StreakEngine) WeeklyView(
	ctx context.Context,
	userID string,
	loc *time.Location,
) repository.Result[[]domain.WeeklyViewEntry] {
	loaded := e.store.Load(ctx, userID)
	return derive(loaded, e.calc.WeeklyView(loaded.Value, e.now(loc)))
}

// FullCalendar returns one month grid per month of history, newest first.
func (e *StreakEngine) FullCalendar(
	ctx context.Context,
	userID string,
	loc *time.Location,
) repository.Result[[]domain.MonthView] {
	loaded := e.store.Load(ctx, userID)
	return derive(loaded, e.calc.FullCalendar(loaded.Value, e.now(loc)))
}

// Current summarizes the streak without recording anything.
func (e *StreakEngine) Current(
	ctx context.Context,
	userID string,
	loc *time.Location,
) repository.Result[streak.Summary] {
	loaded := e.store.Load(ctx, userID)
	return derive(loaded, e.calc.Summarize(loaded.Value, e.now(loc)))
}

func (e *StreakEngine) now(loc *time.Location) time.Time {
	now := e.clock.Now()
	if loc != nil {
		now = now.In(loc)
	}
	return now
}

func (e *StreakEngine) lockFor(userID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return &e.locks[h.Sum32()%streakLockStripes]
}

// derive carries the provenance of a loaded record over to a value computed from it.
func derive[T, V any](loaded repository.Result[T], value V) repository.Result[V] {
	return repository.Result[V]{Value: value, Source: loaded.Source, Err: loaded.Err}
}
