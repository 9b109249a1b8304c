package service_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/lioapp/lio-api/internal/domain"
	"github.com/lioapp/lio-api/internal/mocks"
	"github.com/lioapp/lio-api/internal/platform/memory"
	"github.com/lioapp/lio-api/internal/repository"
	"github.com/lioapp/lio-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func generated(texts ...string) []domain.Affirmation {
	out := make([]domain.Affirmation, len(texts))
	for i, text := range texts {
		out[i] = domain.NewAffirmation(text, domain.CategoryGenerated)
	}
	return out
}

func texts(batch []domain.Affirmation) []string {
	out := make([]string, len(batch))
	for i, a := range batch {
		out[i] = a.Text
	}
	return out
}

type feedFixture struct {
	source   *mocks.AffirmationSource
	profiles *repository.ProfileRepository
	phrases  *repository.PhrasesRepository
	feed     *service.FeedService
}

func newFeedFixture() *feedFixture {
	kv := memory.NewKVStore()
	f := &feedFixture{
		source:   new(mocks.AffirmationSource),
		profiles: repository.NewProfileRepository(kv, nil),
		phrases:  repository.NewPhrasesRepository(kv, nil),
	}
	f.feed = service.NewFeedService(f.source, f.profiles, f.phrases, rand.New(rand.NewSource(1)), nil)
	return f
}

func TestFeedService_PassesProfileAndDropsSeen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFeedFixture()
	profile := domain.UserProfile{Name: "Ana", AgeRange: "25-34"}
	require.NoError(t, f.profiles.Save(ctx, userID, profile))

	f.source.On("GenerateBatch", mock.Anything, profile, 3).
		Return(generated("Eres fuerte.", "Hoy brillas.", "Mereces paz y amor."))

	feed := f.feed.Next(ctx, userID, 3, []string{"Hoy brillas."})

	assert.ElementsMatch(t, []string{"Eres fuerte.", "Mereces paz y amor."}, texts(feed))
	f.source.AssertExpectations(t)
}

func TestFeedService_RepeatsBatchWhenEverythingWasSeen(t *testing.T) {
	t.Parallel()

	f := newFeedFixture()
	f.source.On("GenerateBatch", mock.Anything, mock.Anything, 2).
		Return(generated("Eres fuerte.", "Hoy brillas."))

	feed := f.feed.Next(context.Background(), userID, 2, []string{"Eres fuerte.", "Hoy brillas."})

	assert.Equal(t, []string{"Eres fuerte.", "Hoy brillas."}, texts(feed))
}

func TestFeedService_MixesCustomPhrases(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFeedFixture()
	now := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	require.NoError(t, f.phrases.Save(ctx, userID, []domain.CustomPhrase{
		domain.NewCustomPhrase("Soy dueña de mi calma.", now),
		domain.NewCustomPhrase("Hoy brillas.", now),
	}))
	require.NoError(t, f.phrases.SaveEnabled(ctx, userID, true))

	// Six slots: two go to custom phrases, four to the generator.
	f.source.On("GenerateBatch", mock.Anything, mock.Anything, 4).
		Return(generated("Eres fuerte.", "Hoy brillas.", "Confío en mí.", "Merezco descanso."))

	feed := f.feed.Next(ctx, userID, 6, nil)

	assert.ElementsMatch(t,
		[]string{"Soy dueña de mi calma.", "Hoy brillas.", "Eres fuerte.", "Confío en mí.", "Merezco descanso."},
		texts(feed), "duplicate texts appear once")
	categories := map[string]int{}
	for _, a := range feed {
		categories[a.Category]++
	}
	assert.Equal(t, 2, categories[domain.CategoryCustom])
	f.source.AssertExpectations(t)
}

func TestFeedService_CustomPhrasesDisabled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFeedFixture()
	require.NoError(t, f.phrases.Save(ctx, userID, []domain.CustomPhrase{
		domain.NewCustomPhrase("Soy dueña de mi calma.", time.Now()),
	}))

	f.source.On("GenerateBatch", mock.Anything, mock.Anything, 3).
		Return(generated("Eres fuerte."))

	feed := f.feed.Next(ctx, userID, 3, nil)

	assert.Equal(t, []string{"Eres fuerte."}, texts(feed))
}

func TestFeedService_CountIsClamped(t *testing.T) {
	t.Parallel()

	f := newFeedFixture()
	f.source.On("GenerateBatch", mock.Anything, mock.Anything, 1).
		Return(generated("Eres fuerte."))

	feed := f.feed.Next(context.Background(), userID, 0, nil)

	assert.Len(t, feed, 1)
	f.source.AssertExpectations(t)
}
