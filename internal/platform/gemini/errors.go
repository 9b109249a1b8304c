package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/lioapp/lio-api/internal/generation"
	"google.golang.org/genai"
)

// classifyError wraps an error from the genai client in a generation
// sentinel and reports whether the call may be retried.
func classifyError(err error) (bool, error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests,
			apiErr.Code == http.StatusRequestTimeout,
			apiErr.Code >= http.StatusInternalServerError:
			return true, fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
		case apiErr.Code == http.StatusUnauthorized,
			apiErr.Code == http.StatusForbidden:
			return false, fmt.Errorf("%w: %v", generation.ErrInvalidConfig, err)
		default:
			return false, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
		}
	}

	// Unknown errors are usually transport failures.
	return true, fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
}
