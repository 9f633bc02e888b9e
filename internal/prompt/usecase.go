package prompt

import (
	"fmt"
	"strings"

	"promptstudio-backend/internal/registry"
)

// UseCaseResult is the output of GenerateFromUseCase.
type UseCaseResult struct {
	Prompt   string `json:"prompt"`
	Platform string `json:"platform"`
}

// GenerateFromUseCase interpolates a use-case template. Unlike Generate
// there is no optional elision: a missing variable leaves a blank gap in
// the text. Placeholders that do not match any declared variable are left
// literal. Both behaviors are deliberate; the use-case templates are
// short, fixed strings where gaps are visible and self-explanatory.
func GenerateFromUseCase(useCaseID string, values map[string]string) (UseCaseResult, error) {
	useCase, ok := registry.LookupUseCase(useCaseID)
	if !ok {
		return UseCaseResult{}, fmt.Errorf("%w: %q", ErrUseCaseNotFound, useCaseID)
	}

	rendered := useCase.Template
	for _, v := range useCase.Variables {
		rendered = strings.ReplaceAll(rendered, "{{"+v.ID+"}}", values[v.ID])
	}

	return UseCaseResult{Prompt: rendered, Platform: useCase.Platform}, nil
}
