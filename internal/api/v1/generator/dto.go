package generator

type GenerateRequest struct {
	Platform string            `json:"platform" binding:"required"`
	Template string            `json:"template" binding:"required"`
	Values   map[string]string `json:"values"`
}

type GenerateResponse struct {
	Prompt string `json:"prompt"`
}

type UseCaseGenerateRequest struct {
	UseCase string            `json:"useCase" binding:"required"`
	Values  map[string]string `json:"values"`
}

type UseCaseGenerateResponse struct {
	Prompt   string `json:"prompt"`
	Platform string `json:"platform"`
}
