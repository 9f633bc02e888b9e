// Package prompt implements the prompt-generation engine: platform
// template rendering, use-case interpolation, and the custom template
// compiler. Every function here is pure; persistence and HTTP live in the
// outer layers.
package prompt

import (
	"fmt"

	"promptstudio-backend/internal/models"
)

// renderStrategy formats one component's value for a platform's prompting
// style. Each fragment ends with a blank line; Generate trims the tail.
type renderStrategy func(c models.Component, value string) string

func plainStrategy(_ models.Component, value string) string {
	return value + "\n\n"
}

func taggedStrategy(c models.Component, value string) string {
	return fmt.Sprintf("<%s>\n%s\n</%s>\n\n", c.ID, value, c.ID)
}

func labeledStrategy(c models.Component, value string) string {
	return fmt.Sprintf("**%s**: %s\n\n", c.Name, value)
}

func strategyFor(s models.Strategy) renderStrategy {
	switch s {
	case models.StrategyTagged:
		return taggedStrategy
	case models.StrategyLabeled:
		return labeledStrategy
	default:
		return plainStrategy
	}
}
