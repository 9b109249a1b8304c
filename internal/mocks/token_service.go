package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/lioapp/lio-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	// IssueTokensFn allows test cases to mock the IssueTokens behavior
	IssueTokensFn func(ctx context.Context, userID uuid.UUID) (auth.TokenPair, error)

	// ValidateAccessTokenFn allows test cases to mock the ValidateAccessToken behavior
	ValidateAccessTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// ValidateRefreshTokenFn allows test cases to mock the ValidateRefreshToken behavior
	ValidateRefreshTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Pair        auth.TokenPair
	Err         error
	ValidateErr error
	Claims      *auth.Claims
}

// Ensure MockTokenService implements auth.TokenService interface
var _ auth.TokenService = (*MockTokenService)(nil)

// IssueTokens implements the auth.TokenService interface
func (m *MockTokenService) IssueTokens(ctx context.Context, userID uuid.UUID) (auth.TokenPair, error) {
	if m.IssueTokensFn != nil {
		return m.IssueTokensFn(ctx, userID)
	}
	return m.Pair, m.Err
}

// ValidateAccessToken implements the auth.TokenService interface
func (m *MockTokenService) ValidateAccessToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateAccessTokenFn != nil {
		return m.ValidateAccessTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// ValidateRefreshToken implements the auth.TokenService interface
func (m *MockTokenService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
