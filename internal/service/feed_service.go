package service

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/lioapp/lio-api/internal/domain"
	"github.com/lioapp/lio-api/internal/platform/logger"
)

// AffirmationSource produces batches of affirmations for a profile.
// *affirmation.Pipeline is the production implementation.
type AffirmationSource interface {
	GenerateBatch(ctx context.Context, profile domain.UserProfile, count int) []domain.Affirmation
}

// FeedService assembles the affirmations shown in the swipeable feed.
type FeedService struct {
	source   AffirmationSource
	profiles ProfileStore
	phrases  PhraseStore
	logger   *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewFeedService creates a FeedService. It panics if any dependency is nil.
func NewFeedService(
	source AffirmationSource,
	profiles ProfileStore,
	phrases PhraseStore,
	rng *rand.Rand,
	logger *slog.Logger,
) *FeedService {
	if source == nil || profiles == nil || phrases == nil {
		panic("feed service dependencies cannot be nil")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedService{
		source:   source,
		profiles: profiles,
		phrases:  phrases,
		logger:   logger.With(slog.String("component", "feed_service")),
		rng:      rng,
	}
}

// Next returns up to count affirmations for userID. Entries whose text is
// in seen are dropped. When the user enabled custom phrases and count is
// above one, up to a third of the batch (at least one) is taken from their
// unseen phrases and mixed in at random positions. If every entry had
// already been seen, the unfiltered batch is returned rather than nothing.
func (s *FeedService) Next(ctx context.Context, userID string, count int, seen []string) []domain.Affirmation {
	if count < 1 {
		count = 1
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	seenText := make(map[string]bool, len(seen))
	for _, text := range seen {
		seenText[text] = true
	}

	custom := s.customPicks(ctx, userID, count, seenText)

	profile := s.profiles.Load(ctx, userID).Value
	batch := s.source.GenerateBatch(ctx, profile, count-len(custom))

	feed := make([]domain.Affirmation, 0, count)
	for _, a := range batch {
		if seenText[a.Text] {
			continue
		}
		seenText[a.Text] = true
		feed = append(feed, a)
	}
	feed = append(feed, custom...)

	if len(feed) == 0 {
		log.DebugContext(ctx, "every affirmation was already seen, repeating batch",
			slog.String("user_id", userID))
		return batch
	}

	s.mu.Lock()
	s.rng.Shuffle(len(feed), func(i, j int) { feed[i], feed[j] = feed[j], feed[i] })
	s.mu.Unlock()

	if len(feed) > count {
		feed = feed[:count]
	}
	return feed
}

// customPicks draws unseen custom phrases when the user enabled them.
func (s *FeedService) customPicks(
	ctx context.Context,
	userID string,
	count int,
	seen map[string]bool,
) []domain.Affirmation {
	if !s.phrases.LoadEnabled(ctx, userID).Value {
		return nil
	}

	var candidates []domain.Affirmation
	for _, p := range s.phrases.Load(ctx, userID).Value {
		if !seen[p.Text] {
			candidates = append(candidates, p.Affirmation)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	limit := max(1, count/3)
	if count == 1 {
		// A single slot stays with the generator.
		limit = 0
	}
	if limit > len(candidates) {
		limit = len(candidates)
	}

	s.mu.Lock()
	s.rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
	s.mu.Unlock()

	picks := candidates[:limit]
	for _, p := range picks {
		seen[p.Text] = true
	}
	return picks
}
