package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenPair is handed to a device after registration or refresh.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// TokenService issues and validates the JWTs that identify a device's user.
// Lio has no passwords: the first launch registers an anonymous user and
// the device keeps the tokens.
type TokenService interface {
	// IssueTokens creates a new access/refresh pair for userID.
	IssueTokens(ctx context.Context, userID uuid.UUID) (TokenPair, error)

	// ValidateAccessToken checks an access token and returns its claims.
	// It returns ErrWrongTokenType for refresh tokens.
	ValidateAccessToken(ctx context.Context, tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	// It returns ErrWrongTokenType for access tokens.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims holds the validated contents of a token.
type Claims struct {
	UserID    uuid.UUID
	TokenType TokenType
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
