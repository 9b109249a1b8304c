package affirmation

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/lioapp/lio-api/internal/generation"
)

//go:embed prompts/affirmations.tmpl
var defaultPromptTemplate string

const (
	// Delimiter separates entries in the generator's response.
	Delimiter = "|||"
	// MaxWords is the per-entry word limit requested from the generator.
	MaxWords = 8
)

// PromptData is the data passed to the prompt template.
type PromptData struct {
	Count      int
	Name       string
	AgeRange   string
	Gender     string
	FocusAreas []string
	Themes     []string
	Delimiter  string
	MaxWords   int
}

var promptFuncs = template.FuncMap{"join": strings.Join}

// DefaultPromptTemplate returns the embedded prompt template.
func DefaultPromptTemplate() *template.Template {
	return template.Must(template.New("affirmations").Funcs(promptFuncs).Parse(defaultPromptTemplate))
}

// LoadPromptTemplate reads and parses the template at path.
// An empty path selects the embedded default.
func LoadPromptTemplate(path string) (*template.Template, error) {
	if path == "" {
		return DefaultPromptTemplate(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
			generation.ErrInvalidConfig, path, err)
	}

	tmpl, err := template.New("affirmations").Funcs(promptFuncs).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}
	return tmpl, nil
}

// renderPrompt executes tmpl with data.
func renderPrompt(tmpl *template.Template, data PromptData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	prompt := strings.TrimSpace(buf.String())
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}
	return prompt, nil
}
