package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lioapp/lio-api/internal/domain"
	"github.com/lioapp/lio-api/internal/mocks"
	"github.com/lioapp/lio-api/internal/repository"
	"github.com/lioapp/lio-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPhraseService(kv *mocks.MockKeyValueStore) *service.PhraseService {
	clock := mocks.NewMockClock(time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC))
	return service.NewPhraseService(repository.NewPhrasesRepository(kv, nil), clock, nil)
}

func TestPhraseService_Add(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		text     string
		wantText string
		wantErr  error
	}{
		{name: "plain", text: "Soy capaz de todo.", wantText: "Soy capaz de todo."},
		{name: "trims and collapses spaces", text: "  Soy   capaz \n de todo  ", wantText: "Soy capaz de todo"},
		{name: "strips markup", text: "<b>Soy</b> <i>valiente</i> & libre", wantText: "Soy valiente & libre"},
		{name: "keeps quotes", text: `Digo "sí" a la vida`, wantText: `Digo "sí" a la vida`},
		{name: "empty", text: "   ", wantErr: domain.ErrEmptyContent},
		{name: "only markup", text: "<br/>", wantErr: domain.ErrEmptyContent},
		{name: "too long", text: strings.Repeat("a", domain.MaxCustomPhraseLength+1), wantErr: domain.ErrContentTooLong},
		{name: "at limit", text: strings.Repeat("ñ", domain.MaxCustomPhraseLength), wantText: strings.Repeat("ñ", domain.MaxCustomPhraseLength)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := newPhraseService(&mocks.MockKeyValueStore{})

			phrase, err := svc.Add(context.Background(), userID, tc.text)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantText, phrase.Text)
			assert.Equal(t, domain.CategoryCustom, phrase.Category)
			assert.NotEmpty(t, phrase.ID)
			assert.Equal(t, time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC), phrase.CreatedAt)
		})
	}
}

func TestPhraseService_ListDuplicateDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newPhraseService(&mocks.MockKeyValueStore{})

	first, err := svc.Add(ctx, userID, "Soy capaz de todo.")
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, "Hoy elijo la calma.")
	require.NoError(t, err)

	_, err = svc.Add(ctx, userID, " Soy capaz de todo. ")
	assert.ErrorIs(t, err, domain.ErrDuplicatePhrase)

	list := svc.List(ctx, userID)
	require.Len(t, list, 2)
	assert.Equal(t, "Soy capaz de todo.", list[0].Text)

	require.NoError(t, svc.Delete(ctx, userID, first.ID))
	assert.Len(t, svc.List(ctx, userID), 1)
	assert.ErrorIs(t, svc.Delete(ctx, userID, first.ID), domain.ErrNotFound)
}

func TestPhraseService_RefusesWritesAfterDegradedRead(t *testing.T) {
	t.Parallel()

	kv := &mocks.MockKeyValueStore{GetErr: errors.New("timeout")}
	svc := newPhraseService(kv)

	_, err := svc.Add(context.Background(), userID, "Soy capaz de todo.")
	assert.ErrorIs(t, err, service.ErrStorageUnavailable)

	err = svc.Delete(context.Background(), userID, "any")
	assert.ErrorIs(t, err, service.ErrStorageUnavailable)

	assert.Zero(t, kv.SetCallCount())
}

func TestPhraseService_SaveFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	svc := newPhraseService(&mocks.MockKeyValueStore{SetErr: boom})

	_, err := svc.Add(context.Background(), userID, "Soy capaz de todo.")

	var svcErr *service.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "add_phrase", svcErr.Operation)
	assert.ErrorIs(t, err, boom)
}

func TestPhraseService_Enabled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newPhraseService(&mocks.MockKeyValueStore{})

	assert.False(t, svc.Enabled(ctx, userID))
	require.NoError(t, svc.SetEnabled(ctx, userID, true))
	assert.True(t, svc.Enabled(ctx, userID))
}

func TestPhraseService_AddOverwritesCorruptList(t *testing.T) {
	t.Parallel()

	kv := &mocks.MockKeyValueStore{}
	kv.Put("lio:"+userID+":custom_phrases", `{"not":"a list"}`)
	svc := newPhraseService(kv)
	ctx := context.Background()

	added, err := svc.Add(ctx, userID, "Soy capaz de todo.")
	require.NoError(t, err)

	phrases := svc.List(ctx, userID)
	require.Len(t, phrases, 1)
	assert.Equal(t, added.ID, phrases[0].ID)
}
