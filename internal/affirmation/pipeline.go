package affirmation

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"text/template"
	"time"

	"github.com/lioapp/lio-api/internal/domain"
	"github.com/lioapp/lio-api/internal/generation"
	"github.com/lioapp/lio-api/internal/platform/logger"
)

// Pipeline produces batches of affirmations for a user profile.
// It is safe for concurrent use.
type Pipeline struct {
	generator generation.TextGenerator
	prompt    *template.Template
	themes    []string
	pool      []string
	logger    *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPipeline creates a Pipeline.
//
// Parameters:
//   - generator: The text generator to call; nil means every batch comes from the fallback pool
//   - prompt: The prompt template; nil selects DefaultPromptTemplate
//   - rng: The random source for themes and fallback draws; nil seeds one from the clock
//   - logger: A structured logger; nil uses slog.Default
//
// Returns:
//   - A ready Pipeline using Themes and FallbackPool
func NewPipeline(
	generator generation.TextGenerator,
	prompt *template.Template,
	rng *rand.Rand,
	logger *slog.Logger,
) *Pipeline {
	if prompt == nil {
		prompt = DefaultPromptTemplate()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		generator: generator,
		prompt:    prompt,
		themes:    Themes,
		pool:      FallbackPool,
		logger:    logger.With(slog.String("component", "affirmation_pipeline")),
		rng:       rng,
	}
}

// GenerateBatch returns up to count affirmations for profile. Values of
// count below 1 are treated as 1. Generated entries are tagged
// domain.CategoryGenerated; when generation fails the batch is drawn from
// the fallback pool and tagged domain.CategoryFallback. The generator is
// called at most once.
func (p *Pipeline) GenerateBatch(ctx context.Context, profile domain.UserProfile, count int) []domain.Affirmation {
	if count < 1 {
		count = 1
	}
	log := logger.FromContextOrDefault(ctx, p.logger)

	if p.generator == nil {
		log.DebugContext(ctx, "no text generator configured, using fallback pool")
		return p.fallback(count)
	}

	prompt, err := renderPrompt(p.prompt, PromptData{
		Count:      count,
		Name:       profile.DisplayName(),
		AgeRange:   profile.AgeRange,
		Gender:     profile.Gender,
		FocusAreas: profile.FocusAreas,
		Themes:     p.pickThemes(count),
		Delimiter:  Delimiter,
		MaxWords:   MaxWords,
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to build affirmation prompt", slog.String("error", err.Error()))
		return p.fallback(count)
	}

	raw, err := p.generator.GenerateContent(ctx, prompt)
	if err != nil {
		log.WarnContext(ctx, "affirmation generation failed, using fallback pool",
			slog.String("error", err.Error()))
		return p.fallback(count)
	}

	texts := SanitizeAll(raw, count)
	if len(texts) == 0 {
		log.WarnContext(ctx, "no usable affirmations in response, using fallback pool",
			slog.Int("response_length", len(raw)))
		return p.fallback(count)
	}

	batch := make([]domain.Affirmation, 0, len(texts))
	for _, text := range texts {
		batch = append(batch, domain.NewAffirmation(text, domain.CategoryGenerated))
	}
	log.DebugContext(ctx, "affirmations generated",
		slog.Int("requested", count),
		slog.Int("returned", len(batch)))
	return batch
}

// GenerateSingle returns the first affirmation of a one-item batch.
func (p *Pipeline) GenerateSingle(ctx context.Context, profile domain.UserProfile) domain.Affirmation {
	batch := p.GenerateBatch(ctx, profile, 1)
	if len(batch) == 0 {
		return domain.Affirmation{}
	}
	return batch[0]
}

// pickThemes returns n distinct themes in random order, or all of them when n exceeds the vocabulary.
func (p *Pipeline) pickThemes(n int) []string {
	idx := p.perm(len(p.themes))
	if n > len(idx) {
		n = len(idx)
	}
	themes := make([]string, n)
	for i := range themes {
		themes[i] = p.themes[idx[i]]
	}
	return themes
}

// fallback draws min(count, len(pool)) distinct pool entries.
func (p *Pipeline) fallback(count int) []domain.Affirmation {
	idx := p.perm(len(p.pool))
	if count > len(idx) {
		count = len(idx)
	}
	batch := make([]domain.Affirmation, count)
	for i := range batch {
		batch[i] = domain.NewAffirmation(p.pool[idx[i]], domain.CategoryFallback)
	}
	return batch
}

func (p *Pipeline) perm(n int) []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Perm(n)
}
