package prompt

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"promptstudio-backend/internal/registry"
)

// Generate renders a platform template against the given value map.
// Components whose value is empty are elided entirely, heading included;
// required-but-empty components are elided too, since enforcing required
// fields before generation is the caller's job. Component ids the template
// references but the catalog no longer knows are skipped, not fatal,
// which keeps stale client selections from breaking rendering.
func Generate(platformID, templateID string, values map[string]string) (string, error) {
	platform, ok := registry.LookupPlatform(platformID)
	if !ok {
		return "", fmt.Errorf("%w: platform %q", ErrTemplateNotFound, platformID)
	}
	template, ok := registry.LookupPlatformTemplate(platformID, templateID)
	if !ok {
		return "", fmt.Errorf("%w: %q on platform %q", ErrTemplateNotFound, templateID, platformID)
	}

	emit := strategyFor(platform.Strategy)

	var b strings.Builder
	for _, id := range template.Components {
		component, ok := registry.LookupComponent(id)
		if !ok {
			zap.L().Debug("skipping unknown component",
				zap.String("component", id),
				zap.String("platform", platformID),
				zap.String("template", templateID))
			continue
		}
		value := strings.TrimSpace(values[component.ID])
		if value == "" {
			continue
		}
		b.WriteString(emit(component, value))
	}

	return strings.TrimRight(b.String(), " \t\n"), nil
}
