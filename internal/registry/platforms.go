package registry

import "promptstudio-backend/internal/models"

var platforms = []models.Platform{
	{
		ID:       "openai",
		Name:     "ChatGPT / OpenAI",
		Strategy: models.StrategyPlain,
		Templates: []models.PlatformTemplate{
			{
				ID:          "general",
				Name:        "General Purpose",
				Description: "Instruction-first prompt for everyday tasks",
				Components:  []string{"task", "context", "format", "tone"},
				BestFor:     []string{"Everyday questions", "Drafting", "Summaries"},
			},
			{
				ID:          "creative-writing",
				Name:        "Creative Writing",
				Description: "Role-driven prompt for marketing and creative copy",
				Components:  []string{"role", "task", "audience", "tone", "examples"},
				BestFor:     []string{"Marketing copy", "Stories", "Social posts"},
			},
			{
				ID:          "analysis",
				Name:        "Analysis",
				Description: "Structured prompt for breaking down source material",
				Components:  []string{"task", "context", "constraints", "format"},
				BestFor:     []string{"Document review", "Comparisons", "Research notes"},
			},
		},
	},
	{
		ID:       "anthropic",
		Name:     "Claude / Anthropic",
		Strategy: models.StrategyTagged,
		Templates: []models.PlatformTemplate{
			{
				ID:          "general",
				Name:        "General Purpose",
				Description: "XML-tagged prompt following Claude's documented style",
				Components:  []string{"task", "context", "examples", "format"},
				BestFor:     []string{"Everyday questions", "Long documents"},
			},
			{
				ID:          "document-qa",
				Name:        "Document Q&A",
				Description: "Context-first prompt for question answering over pasted text",
				Components:  []string{"context", "task", "constraints"},
				BestFor:     []string{"Contracts", "Reports", "Research papers"},
			},
			{
				ID:          "structured",
				Name:        "Structured Output",
				Description: "Tagged prompt with examples pinning the output shape",
				Components:  []string{"role", "task", "examples", "format", "tone"},
				BestFor:     []string{"Data extraction", "Templated responses"},
			},
		},
	},
	{
		ID:       "google",
		Name:     "Gemini / Google",
		Strategy: models.StrategyLabeled,
		Templates: []models.PlatformTemplate{
			{
				ID:          "general",
				Name:        "General Purpose",
				Description: "Labeled-section prompt for Gemini",
				Components:  []string{"task", "context", "audience", "format"},
				BestFor:     []string{"Everyday questions", "Explanations"},
			},
			{
				ID:          "research",
				Name:        "Research Brief",
				Description: "Labeled prompt for structured research output",
				Components:  []string{"task", "context", "constraints", "length"},
				BestFor:     []string{"Topic overviews", "Fact gathering"},
			},
		},
	},
}

var platformIndex = buildPlatformIndex()

func buildPlatformIndex() map[string]models.Platform {
	idx := make(map[string]models.Platform, len(platforms))
	for _, p := range platforms {
		idx[p.ID] = p
	}
	return idx
}

// LookupPlatform returns the platform for id.
func LookupPlatform(id string) (models.Platform, bool) {
	p, ok := platformIndex[id]
	return p, ok
}

// LookupPlatformTemplate resolves a template inside a platform's namespace.
func LookupPlatformTemplate(platformID, templateID string) (models.PlatformTemplate, bool) {
	p, ok := platformIndex[platformID]
	if !ok {
		return models.PlatformTemplate{}, false
	}
	for _, t := range p.Templates {
		if t.ID == templateID {
			return t, true
		}
	}
	return models.PlatformTemplate{}, false
}

// Platforms returns all platforms in display order.
func Platforms() []models.Platform {
	out := make([]models.Platform, len(platforms))
	copy(out, platforms)
	return out
}
