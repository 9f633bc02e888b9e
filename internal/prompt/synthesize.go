package prompt

import (
	"strings"

	"go.uber.org/zap"

	"promptstudio-backend/internal/registry"
)

// Synthesize derives a template string from an ordered component
// selection. Required components get an unconditional heading and slot;
// optional ones are wrapped in an {{#if}} block so real rendering can
// elide them. The output keeps the builder's historical spacing, with no
// newline normalization around the conditional markers, so previously
// saved templates and freshly synthesized ones stay byte-compatible.
func Synthesize(componentIDs []string) string {
	var b strings.Builder
	for _, id := range componentIDs {
		component, ok := registry.LookupComponent(id)
		if !ok {
			zap.L().Debug("skipping unknown component in synthesis", zap.String("component", id))
			continue
		}
		if component.Required {
			b.WriteString("# " + component.Name + "\n{{" + component.ID + "}}\n\n")
		} else {
			b.WriteString("{{#if " + component.ID + "}}# " + component.Name + "\n{{" + component.ID + "}}\n\n{{/if}}")
		}
	}
	return b.String()
}
