package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFromUseCase(t *testing.T) {
	result, err := GenerateFromUseCase("blog-post", map[string]string{
		"topic":    "gardening",
		"audience": "beginners",
		"tone":     "friendly",
		"keywords": "raised beds, compost",
	})
	assert.NoError(t, err)
	assert.Equal(t, "openai", result.Platform)
	assert.Contains(t, result.Prompt, "Write a blog post about gardening for beginners.")
	assert.Contains(t, result.Prompt, "raised beds, compost")
	assert.NotContains(t, result.Prompt, "{{topic}}")
	assert.NotContains(t, result.Prompt, "{{audience}}")
}

func TestGenerateFromUseCaseMissingVariableLeavesGap(t *testing.T) {
	// No optional elision here: a missing variable becomes a blank gap,
	// not an omitted line.
	result, err := GenerateFromUseCase("blog-post", map[string]string{
		"topic": "gardening",
	})
	assert.NoError(t, err)
	assert.Contains(t, result.Prompt, "Write a blog post about gardening for .")
	assert.Contains(t, result.Prompt, "Use a  tone throughout.")
	assert.NotContains(t, result.Prompt, "{{")
}

func TestGenerateFromUseCaseSelectVariable(t *testing.T) {
	result, err := GenerateFromUseCase("social-media", map[string]string{
		"channel":  "linkedin",
		"topic":    "prompt writing",
		"hashtags": "#ai",
	})
	assert.NoError(t, err)
	assert.Contains(t, result.Prompt, "Write a linkedin post about prompt writing.")
}

func TestGenerateFromUseCaseUnknownID(t *testing.T) {
	result, err := GenerateFromUseCase("no-such-use-case", map[string]string{"a": "b"})
	assert.ErrorIs(t, err, ErrUseCaseNotFound)
	assert.Empty(t, result.Prompt)
	assert.Empty(t, result.Platform)
}
