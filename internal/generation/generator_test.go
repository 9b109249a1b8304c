package generation_test

import (
	"context"
	"testing"

	"github.com/lioapp/lio-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextGeneratorFunc(t *testing.T) {
	t.Parallel()

	var got string
	var gen generation.TextGenerator = generation.TextGeneratorFunc(
		func(_ context.Context, prompt string) (string, error) {
			got = prompt
			return "ok", nil
		})

	out, err := gen.GenerateContent(context.Background(), "hola")

	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "hola", got)
}
