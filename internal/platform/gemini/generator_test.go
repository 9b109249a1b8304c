package gemini

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lioapp/lio-api/internal/config"
	"github.com/lioapp/lio-api/internal/generation"
	"github.com/lioapp/lio-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeCall struct {
	resp *genai.GenerateContentResponse
	err  error
}

// fakeModels replays scripted results; the last one repeats.
type fakeModels struct {
	mu      sync.Mutex
	script  []fakeCall
	calls   int
	models  []string
	prompts []string
	configs []*genai.GenerateContentConfig
	onCall  func(call int)
}

func (f *fakeModels) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.models = append(f.models, model)
	f.configs = append(f.configs, cfg)
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompts = append(f.prompts, contents[0].Parts[0].Text)
	}
	if f.onCall != nil {
		f.onCall(f.calls)
	}

	idx := f.calls - 1
	if idx >= len(f.script) {
		idx = len(f.script) - 1
	}
	return f.script[idx].resp, f.script[idx].err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Parts: []*genai.Part{{Text: text}}},
			FinishReason: genai.FinishReasonStop,
		}},
	}
}

func testConfig() config.LLMConfig {
	return config.LLMConfig{
		GeminiAPIKey:      "test-key",
		ModelName:         "gemini-test",
		Temperature:       0.7,
		MaxOutputTokens:   128,
		MaxRetries:        2,
		RetryDelaySeconds: 1,
	}
}

func newTestGenerator(t *testing.T, models *fakeModels, cfg config.LLMConfig) *Generator {
	t.Helper()
	_, log := logger.NewTestLogger(t)
	g := newGenerator(models, log, cfg)
	g.baseDelay = time.Millisecond
	return g
}

func TestGenerateContent_Success(t *testing.T) {
	t.Parallel()

	models := &fakeModels{script: []fakeCall{{resp: textResponse("Eres fuerte.|||Hoy brillas.")}}}
	g := newTestGenerator(t, models, testConfig())

	text, err := g.GenerateContent(context.Background(), "escribe afirmaciones")

	require.NoError(t, err)
	assert.Equal(t, "Eres fuerte.|||Hoy brillas.", text)
	assert.Equal(t, 1, models.calls)
	assert.Equal(t, []string{"gemini-test"}, models.models)
	assert.Equal(t, []string{"escribe afirmaciones"}, models.prompts)
	require.NotNil(t, models.configs[0].Temperature)
	assert.InDelta(t, 0.7, *models.configs[0].Temperature, 1e-6)
	assert.Equal(t, int32(128), models.configs[0].MaxOutputTokens)
}

func TestGenerateContent_EmptyPrompt(t *testing.T) {
	t.Parallel()

	models := &fakeModels{script: []fakeCall{{resp: textResponse("unused")}}}
	g := newTestGenerator(t, models, testConfig())

	_, err := g.GenerateContent(context.Background(), "  ")

	assert.ErrorIs(t, err, generation.ErrEmptyPrompt)
	assert.Zero(t, models.calls)
}

func TestGenerateContent_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	models := &fakeModels{script: []fakeCall{
		{err: genai.APIError{Code: 503, Message: "overloaded"}},
		{err: genai.APIError{Code: 429, Message: "slow down"}},
		{resp: textResponse("Soy capaz.")},
	}}
	g := newTestGenerator(t, models, testConfig())

	text, err := g.GenerateContent(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "Soy capaz.", text)
	assert.Equal(t, 3, models.calls)
}

func TestGenerateContent_GivesUpAfterMaxRetries(t *testing.T) {
	t.Parallel()

	models := &fakeModels{script: []fakeCall{{err: errors.New("connection reset by peer")}}}
	g := newTestGenerator(t, models, testConfig())

	_, err := g.GenerateContent(context.Background(), "prompt")

	assert.ErrorIs(t, err, generation.ErrTransientFailure)
	assert.Equal(t, 3, models.calls, "one call plus two retries")
}

func TestGenerateContent_PermanentFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		call    fakeCall
		wantErr error
	}{
		{
			name: "safety finish reason",
			call: fakeCall{resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content:      &genai.Content{Parts: []*genai.Part{{Text: "partial"}}},
				FinishReason: genai.FinishReasonSafety,
			}}}},
			wantErr: generation.ErrContentBlocked,
		},
		{
			name: "blocked prompt",
			call: fakeCall{resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
			}},
			wantErr: generation.ErrContentBlocked,
		},
		{
			name:    "no candidates",
			call:    fakeCall{resp: &genai.GenerateContentResponse{}},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "blank text",
			call:    fakeCall{resp: textResponse("   ")},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "nil response",
			call:    fakeCall{},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "bad request",
			call:    fakeCall{err: genai.APIError{Code: 400, Message: "bad"}},
			wantErr: generation.ErrGenerationFailed,
		},
		{
			name:    "rejected api key",
			call:    fakeCall{err: genai.APIError{Code: 403, Message: "denied"}},
			wantErr: generation.ErrInvalidConfig,
		},
		{
			name:    "deadline exceeded",
			call:    fakeCall{err: context.DeadlineExceeded},
			wantErr: generation.ErrGenerationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			models := &fakeModels{script: []fakeCall{tc.call}}
			g := newTestGenerator(t, models, testConfig())

			_, err := g.GenerateContent(context.Background(), "prompt")

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, 1, models.calls, "permanent failures are not retried")
		})
	}
}

func TestGenerateContent_CancelledDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	models := &fakeModels{
		script: []fakeCall{{err: genai.APIError{Code: 500, Message: "boom"}}},
		onCall: func(int) { cancel() },
	}
	g := newTestGenerator(t, models, testConfig())
	g.baseDelay = time.Hour

	_, err := g.GenerateContent(ctx, "prompt")

	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.Equal(t, 1, models.calls)
}

func TestGenerateContent_NoRetriesConfigured(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.MaxRetries = -1
	models := &fakeModels{script: []fakeCall{{err: genai.APIError{Code: 502}}}}
	g := newTestGenerator(t, models, cfg)

	_, err := g.GenerateContent(context.Background(), "prompt")

	assert.ErrorIs(t, err, generation.ErrTransientFailure)
	assert.Equal(t, 1, models.calls)
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t, &fakeModels{}, testConfig())
	g.baseDelay = 100 * time.Millisecond

	for attempt := 0; attempt < 4; attempt++ {
		full := g.baseDelay << attempt
		for i := 0; i < 20; i++ {
			d := g.backoff(attempt)
			assert.GreaterOrEqual(t, d, full/2)
			assert.Less(t, d, full)
		}
	}
}

func TestNewGenerator_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, log := logger.NewTestLogger(t)

	cfg := testConfig()
	cfg.GeminiAPIKey = ""
	_, err := NewGenerator(context.Background(), log, cfg)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	cfg = testConfig()
	cfg.ModelName = ""
	_, err = NewGenerator(context.Background(), log, cfg)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = NewGenerator(context.Background(), nil, testConfig())
	assert.Error(t, err)
}
