package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeRequiredAndOptional(t *testing.T) {
	// task is required in the catalog, tone is not.
	tpl := Synthesize([]string{"task", "tone"})

	assert.Contains(t, tpl, "# Task\n{{task}}\n\n")
	assert.NotContains(t, tpl, "{{#if task}}")
	assert.Contains(t, tpl, "{{#if tone}}# Tone\n{{tone}}\n\n{{/if}}")
}

func TestSynthesizePreservesSelectionOrder(t *testing.T) {
	tpl := Synthesize([]string{"context", "task"})
	assert.Less(t, strings.Index(tpl, "{{context}}"), strings.Index(tpl, "{{task}}"))
}

func TestSynthesizeSkipsUnknownComponents(t *testing.T) {
	tpl := Synthesize([]string{"task", "ghost-component"})
	assert.Contains(t, tpl, "{{task}}")
	assert.NotContains(t, tpl, "ghost-component")
}

func TestSynthesizeEmptySelection(t *testing.T) {
	assert.Empty(t, Synthesize(nil))
}

func TestSynthesizePreviewRoundTrip(t *testing.T) {
	tpl := Synthesize([]string{"task", "tone"})

	out, err := Preview(tpl, map[string]string{
		"task": "Summarize the meeting notes",
		"tone": "casual",
	})
	assert.NoError(t, err)
	assert.Contains(t, out, "Summarize the meeting notes")
	assert.Contains(t, out, "casual")
	assert.NotContains(t, out, "{{#if")
	assert.NotContains(t, out, "{{/if}}")
	assert.NotContains(t, out, "{{task}}")
}

func TestPreviewStripsConditionalsWithoutEvaluating(t *testing.T) {
	// The preview never evaluates truthiness: the optional section renders
	// even though its value is absent, leaving the heading with a gap.
	out, err := Preview("{{#if tone}}# Tone\n{{tone}}\n{{/if}}", map[string]string{})
	assert.NoError(t, err)
	assert.Equal(t, "# Tone\n\n", out)
}

func TestPreviewMalformedTemplate(t *testing.T) {
	out, err := Preview("{{#if tone}}no closing marker", SampleValues())
	assert.Error(t, err)
	assert.Empty(t, out)

	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestPreviewWithSampleValues(t *testing.T) {
	tpl := Synthesize([]string{"task", "context", "tone"})
	out, err := Preview(tpl, SampleValues())
	assert.NoError(t, err)

	samples := SampleValues()
	assert.Contains(t, out, samples["task"])
	assert.Contains(t, out, samples["context"])
	assert.Contains(t, out, samples["tone"])
}

func TestSampleValuesCoverCatalog(t *testing.T) {
	samples := SampleValues()
	for _, id := range []string{"task", "context", "role", "audience", "tone", "format", "length", "examples", "constraints"} {
		assert.NotEmpty(t, samples[id], "no sample value for %s", id)
	}
}
