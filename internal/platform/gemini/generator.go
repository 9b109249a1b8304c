package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/lioapp/lio-api/internal/config"
	"github.com/lioapp/lio-api/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the part of *genai.Models used by Generator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Generator implements generation.TextGenerator using the Gemini API.
type Generator struct {
	logger     *slog.Logger
	models     contentGenerator
	model      string
	genConfig  *genai.GenerateContentConfig
	maxRetries int
	baseDelay  time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// Ensure Generator implements generation.TextGenerator interface
var _ generation.TextGenerator = (*Generator)(nil)

// NewGenerator creates a Generator backed by a genai client.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and retry settings
//
// Returns:
//   - A ready Generator, or an error wrapping generation.ErrInvalidConfig
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return newGenerator(client.Models, logger, cfg), nil
}

func newGenerator(models contentGenerator, logger *slog.Logger, cfg config.LLMConfig) *Generator {
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	baseDelay := time.Duration(cfg.RetryDelaySeconds) * time.Second
	if baseDelay <= 0 {
		baseDelay = time.Second
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(cfg.Temperature),
	}
	if cfg.MaxOutputTokens > 0 {
		genConfig.MaxOutputTokens = cfg.MaxOutputTokens
	}

	return &Generator{
		logger:     logger.With(slog.String("component", "gemini_generator"), slog.String("model", cfg.ModelName)),
		models:     models,
		model:      cfg.ModelName,
		genConfig:  genConfig,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateContent sends prompt to the model and returns the text of the
// first candidate. Transient failures are retried up to the configured
// number of times.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", generation.ErrEmptyPrompt
	}

	for attempt := 0; ; attempt++ {
		attemptNum := attempt + 1
		g.logger.DebugContext(ctx, "making Gemini API call",
			slog.Int("attempt", attemptNum),
			slog.Int("max_attempts", g.maxRetries+1))

		text, retryable, err := g.call(ctx, prompt)
		if err == nil {
			g.logger.DebugContext(ctx, "Gemini API call successful",
				slog.Int("attempt", attemptNum),
				slog.Int("response_length", len(text)))
			return text, nil
		}

		g.logger.WarnContext(ctx, "Gemini API call failed",
			slog.Int("attempt", attemptNum),
			slog.String("error", err.Error()))

		if !retryable {
			return "", err
		}
		if attempt >= g.maxRetries {
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
				generation.ErrTransientFailure, g.maxRetries, err)
		}

		delay := g.backoff(attempt)
		g.logger.InfoContext(ctx, "retrying after delay",
			slog.Int("attempt", attemptNum),
			slog.Duration("delay", delay))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: cancelled during retry delay: %v",
				generation.ErrGenerationFailed, ctx.Err())
		}
	}
}

// call performs one request and reports whether a failure may be retried.
func (g *Generator) call(ctx context.Context, prompt string) (string, bool, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), g.genConfig)
	if err != nil {
		retryable, classified := classifyError(err)
		return "", retryable, classified
	}

	switch {
	case resp == nil:
		return "", false, fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	case resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "":
		return "", false, fmt.Errorf("%w: prompt blocked (%s)",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	case len(resp.Candidates) == 0:
		return "", false, fmt.Errorf("%w: no candidates generated", generation.ErrInvalidResponse)
	case resp.Candidates[0].FinishReason == genai.FinishReasonSafety:
		return "", false, fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", false, fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}
	return text, false, nil
}

// backoff returns baseDelay * 2^attempt scaled by a jitter factor in [0.5, 1.0).
func (g *Generator) backoff(attempt int) time.Duration {
	g.mu.Lock()
	jitter := 0.5 + g.rng.Float64()*0.5
	g.mu.Unlock()

	return time.Duration(float64(g.baseDelay) * math.Pow(2, float64(attempt)) * jitter)
}
