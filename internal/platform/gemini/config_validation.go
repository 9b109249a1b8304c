package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lioapp/lio-api/internal/config"
	"github.com/lioapp/lio-api/internal/generation"
)

// validateConfig checks the settings the client cannot start without.
// Out-of-range retry settings are only logged; newGenerator clamps them.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.MaxRetries < 0 {
		logger.WarnContext(ctx, "invalid MaxRetries value, retries disabled",
			slog.Int("value", cfg.MaxRetries))
	}
	if cfg.RetryDelaySeconds < 1 {
		logger.WarnContext(ctx, "invalid RetryDelaySeconds value, using 1 second",
			slog.Int("value", cfg.RetryDelaySeconds))
	}
	return nil
}
