package mocks

import (
	"context"

	"github.com/lioapp/lio-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// AffirmationSource is a testify mock for service.AffirmationSource.
type AffirmationSource struct {
	mock.Mock
}

// GenerateBatch records the call and returns the configured batch.
func (m *AffirmationSource) GenerateBatch(
	ctx context.Context,
	profile domain.UserProfile,
	count int,
) []domain.Affirmation {
	args := m.Called(ctx, profile, count)
	batch, _ := args.Get(0).([]domain.Affirmation)
	return batch
}
