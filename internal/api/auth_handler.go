package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/lioapp/lio-api/internal/api/shared"
	"github.com/lioapp/lio-api/internal/platform/logger"
	"github.com/lioapp/lio-api/internal/service/auth"
)

// AuthHandler handles device registration and token refresh.
type AuthHandler struct {
	tokenService auth.TokenService
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(tokenService auth.TokenService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		tokenService: tokenService,
		logger:       logger.With(slog.String("component", "auth_handler")),
	}
}

// RegisterDevice handles POST /api/auth/device. It creates an anonymous user
// and returns the token pair the device will use from now on.
func (h *AuthHandler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	userID := uuid.New()

	pair, err := h.tokenService.IssueTokens(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("device registered",
		slog.String("user_id", userID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, DeviceAuthResponse{
		UserID:       userID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	})
}

// RefreshToken handles POST /api/auth/refresh.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	claims, err := h.tokenService.ValidateRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
			"Invalid refresh token", err, shared.WithElevatedLogLevel())
		return
	}

	pair, err := h.tokenService.IssueTokens(r.Context(), claims.UserID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RefreshTokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	})
}
