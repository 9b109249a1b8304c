package generation

import "context"

// TextGenerator defines the interface for generating free-form text from a prompt.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type TextGenerator interface {
	// GenerateContent sends prompt to the model and returns its raw text output.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - prompt: The complete instruction text
	//
	// Returns:
	//   - The concatenated text of the model's first candidate
	//   - An error if the generation fails for any reason (see errors.go for specific types)
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// TextGeneratorFunc adapts an ordinary function to the TextGenerator interface.
type TextGeneratorFunc func(ctx context.Context, prompt string) (string, error)

// GenerateContent calls f(ctx, prompt).
func (f TextGeneratorFunc) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
