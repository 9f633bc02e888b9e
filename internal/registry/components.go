// Package registry holds the static prompt-building catalogs: reusable
// components, per-platform templates, and use-case templates. The data is
// immutable after init, so lookups are safe from any goroutine.
package registry

import "promptstudio-backend/internal/models"

var components = []models.Component{
	{
		ID:          "task",
		Name:        "Task",
		InputType:   models.InputTypeLongText,
		Placeholder: "Describe what you want the AI to do...",
		Tips:        "Be specific about the outcome you expect. Start with a verb.",
		Required:    true,
		BestPractices: map[string]string{
			"openai":    "Lead with the instruction before any context or examples.",
			"anthropic": "State the task plainly; Claude responds well to direct requests.",
			"google":    "Keep the task to one or two sentences and put details in context.",
		},
	},
	{
		ID:          "context",
		Name:        "Context",
		InputType:   models.InputTypeLongText,
		Placeholder: "Background information the AI should know...",
		Tips:        "Include only details that change the answer. More is not better.",
		BestPractices: map[string]string{
			"anthropic": "Long documents belong in context, placed before the task.",
			"google":    "Label context clearly so it is not mistaken for instructions.",
		},
	},
	{
		ID:          "role",
		Name:        "Role",
		InputType:   models.InputTypeShortText,
		Placeholder: "e.g. a senior copywriter",
		Tips:        "A role narrows vocabulary and perspective. Skip it for factual lookups.",
		BestPractices: map[string]string{
			"openai": "Roles work best in the system message; here they prefix the prompt.",
		},
	},
	{
		ID:          "audience",
		Name:        "Audience",
		InputType:   models.InputTypeShortText,
		Placeholder: "Who is this for? e.g. first-time home buyers",
		Tips:        "Naming the audience sets reading level and tone automatically.",
	},
	{
		ID:        "tone",
		Name:      "Tone",
		InputType: models.InputTypeSingleSelect,
		Options: []models.Option{
			{Value: "professional", Label: "Professional"},
			{Value: "casual", Label: "Casual"},
			{Value: "friendly", Label: "Friendly"},
			{Value: "authoritative", Label: "Authoritative"},
			{Value: "humorous", Label: "Humorous"},
		},
		Tips: "Pick one. Mixed tones read as inconsistent.",
	},
	{
		ID:        "format",
		Name:      "Output Format",
		InputType: models.InputTypeSingleSelect,
		Options: []models.Option{
			{Value: "paragraphs", Label: "Paragraphs"},
			{Value: "bullet-points", Label: "Bullet points"},
			{Value: "numbered-list", Label: "Numbered list"},
			{Value: "table", Label: "Table"},
			{Value: "markdown", Label: "Markdown document"},
		},
		Tips: "Asking for a format up front avoids reformatting rounds.",
		BestPractices: map[string]string{
			"openai": "Describe the format or show a short example of it.",
			"google": "Gemini follows explicit format labels reliably.",
		},
	},
	{
		ID:        "length",
		Name:      "Length",
		InputType: models.InputTypeSingleSelect,
		Options: []models.Option{
			{Value: "short", Label: "Short (under 150 words)"},
			{Value: "medium", Label: "Medium (150-500 words)"},
			{Value: "long", Label: "Long (500+ words)"},
		},
		Tips: "Word counts beat vague size words like 'brief'.",
	},
	{
		ID:          "examples",
		Name:        "Examples",
		InputType:   models.InputTypeLongText,
		Placeholder: "Paste one or two examples of the output you want...",
		Tips:        "One good example outperforms a paragraph of description.",
		BestPractices: map[string]string{
			"anthropic": "Wrap each example in its own tags so they are not echoed back.",
			"openai":    "Few-shot examples should match the exact output format you want.",
		},
	},
	{
		ID:          "constraints",
		Name:        "Constraints",
		InputType:   models.InputTypeLongText,
		Placeholder: "Things to avoid or rules to follow...",
		Tips:        "Phrase constraints positively where possible: 'use US spelling' over 'don't use UK spelling'.",
	},
}

var componentIndex = buildComponentIndex()

func buildComponentIndex() map[string]models.Component {
	idx := make(map[string]models.Component, len(components))
	for _, c := range components {
		idx[c.ID] = c
	}
	return idx
}

// LookupComponent returns the catalog component for id. Callers must treat
// a miss as "render nothing", never as a fatal condition.
func LookupComponent(id string) (models.Component, bool) {
	c, ok := componentIndex[id]
	return c, ok
}

// Components returns the catalog in display order.
func Components() []models.Component {
	out := make([]models.Component, len(components))
	copy(out, components)
	return out
}
