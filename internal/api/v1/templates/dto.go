package templates

import "promptstudio-backend/internal/models"

type SaveTemplateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Components  []string `json:"components"`
	Template    string   `json:"template"`
	BestFor     []string `json:"bestFor"`
}

type TemplateListResponse struct {
	Total int                     `json:"total"`
	Items []models.CustomTemplate `json:"items"`
}

type SynthesizeRequest struct {
	Components []string `json:"components" binding:"required,min=1"`
}

type SynthesizeResponse struct {
	Template string `json:"template"`
}

type PreviewRequest struct {
	Template string `json:"template" binding:"required"`
	// Values overrides the built-in sample data when present.
	Values map[string]string `json:"values"`
}

type PreviewResponse struct {
	Preview string `json:"preview"`
}
