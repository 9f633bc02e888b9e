package registry

import "promptstudio-backend/internal/models"

// Use-case variables are a separate namespace from catalog components.
// "topic" below is unrelated to any component id of the same name.
var useCases = []models.UseCaseTemplate{
	{
		ID:          "blog-post",
		Name:        "Blog Post",
		Description: "Outline and draft a blog post on a topic",
		Variables: []models.Variable{
			{ID: "topic", Name: "Topic", InputType: models.InputTypeShortText, Placeholder: "e.g. container gardening", Required: true},
			{ID: "audience", Name: "Target Audience", InputType: models.InputTypeShortText, Placeholder: "e.g. beginners"},
			{ID: "tone", Name: "Tone", InputType: models.InputTypeShortText, Placeholder: "e.g. friendly"},
			{ID: "keywords", Name: "Keywords", InputType: models.InputTypeShortText, Placeholder: "comma-separated SEO keywords"},
		},
		Template: "Write a blog post about {{topic}} for {{audience}}.\n" +
			"Use a {{tone}} tone throughout.\n" +
			"Naturally include these keywords: {{keywords}}.\n" +
			"Start with a hook, use subheadings, and end with a call to action.",
		Platform: "openai",
	},
	{
		ID:          "product-description",
		Name:        "Product Description",
		Description: "E-commerce copy for a single product",
		Variables: []models.Variable{
			{ID: "product", Name: "Product", InputType: models.InputTypeShortText, Required: true},
			{ID: "features", Name: "Key Features", InputType: models.InputTypeLongText, Placeholder: "one per line"},
			{ID: "audience", Name: "Target Customer", InputType: models.InputTypeShortText},
			{ID: "tone", Name: "Tone", InputType: models.InputTypeShortText},
		},
		Template: "Write a product description for {{product}} aimed at {{audience}}.\n" +
			"Highlight these features:\n{{features}}\n" +
			"Keep the tone {{tone}} and focus on benefits over specifications.",
		Platform: "openai",
	},
	{
		ID:          "email-campaign",
		Name:        "Email Campaign",
		Description: "Marketing email with a single clear call to action",
		Variables: []models.Variable{
			{ID: "goal", Name: "Campaign Goal", InputType: models.InputTypeShortText, Placeholder: "e.g. announce a course launch", Required: true},
			{ID: "audience", Name: "Audience", InputType: models.InputTypeShortText},
			{ID: "offer", Name: "Offer", InputType: models.InputTypeShortText, Placeholder: "e.g. 20% off this week"},
			{ID: "cta", Name: "Call to Action", InputType: models.InputTypeShortText, Placeholder: "e.g. Enroll now"},
		},
		Template: "Write a marketing email to {{audience}}. The goal is to {{goal}}.\n" +
			"The offer is: {{offer}}.\n" +
			"Include a subject line, a short body, and one call to action: {{cta}}.",
		Platform: "anthropic",
	},
	{
		ID:          "social-media",
		Name:        "Social Media Post",
		Description: "Short-form post for a social channel",
		Variables: []models.Variable{
			{ID: "channel", Name: "Channel", InputType: models.InputTypeSingleSelect, Options: []models.Option{
				{Value: "linkedin", Label: "LinkedIn"},
				{Value: "twitter", Label: "X / Twitter"},
				{Value: "instagram", Label: "Instagram"},
			}, Required: true},
			{ID: "topic", Name: "Topic", InputType: models.InputTypeShortText, Required: true},
			{ID: "hashtags", Name: "Hashtags", InputType: models.InputTypeShortText},
		},
		Template: "Write a {{channel}} post about {{topic}}.\n" +
			"Match the channel's usual length and voice.\n" +
			"End with these hashtags: {{hashtags}}",
		Platform: "openai",
	},
	{
		ID:          "video-script",
		Name:        "Video Script",
		Description: "Script outline for a short video",
		Variables: []models.Variable{
			{ID: "topic", Name: "Topic", InputType: models.InputTypeShortText, Required: true},
			{ID: "duration", Name: "Duration", InputType: models.InputTypeShortText, Placeholder: "e.g. 3 minutes"},
			{ID: "audience", Name: "Audience", InputType: models.InputTypeShortText},
		},
		Template: "Write a {{duration}} video script about {{topic}} for {{audience}}.\n" +
			"Structure it as: hook, three main points, recap, call to action.\n" +
			"Include [visual direction] notes in brackets.",
		Platform: "google",
	},
	{
		ID:          "customer-support",
		Name:        "Customer Support Reply",
		Description: "Empathetic response to a customer message",
		Variables: []models.Variable{
			{ID: "message", Name: "Customer Message", InputType: models.InputTypeLongText, Required: true},
			{ID: "resolution", Name: "Resolution", InputType: models.InputTypeLongText, Placeholder: "what you can offer or do"},
			{ID: "company", Name: "Company Name", InputType: models.InputTypeShortText},
		},
		Template: "Write a support reply on behalf of {{company}} to this customer message:\n{{message}}\n\n" +
			"The resolution to offer: {{resolution}}.\n" +
			"Acknowledge the issue first, keep it under 150 words, no corporate filler.",
		Platform: "anthropic",
	},
}

var useCaseIndex = buildUseCaseIndex()

func buildUseCaseIndex() map[string]models.UseCaseTemplate {
	idx := make(map[string]models.UseCaseTemplate, len(useCases))
	for _, uc := range useCases {
		idx[uc.ID] = uc
	}
	return idx
}

// LookupUseCase returns the use-case template for id.
func LookupUseCase(id string) (models.UseCaseTemplate, bool) {
	uc, ok := useCaseIndex[id]
	return uc, ok
}

// UseCases returns all use-case templates in display order.
func UseCases() []models.UseCaseTemplate {
	out := make([]models.UseCaseTemplate, len(useCases))
	copy(out, useCases)
	return out
}
