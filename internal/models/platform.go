package models

// Strategy selects how a platform formats each component value in the
// rendered prompt.
type Strategy string

const (
	// StrategyPlain concatenates raw values separated by blank lines.
	StrategyPlain Strategy = "plain"
	// StrategyTagged wraps each value in <componentId> ... </componentId> tags.
	StrategyTagged Strategy = "tagged"
	// StrategyLabeled prefixes each value with a bold component name label.
	StrategyLabeled Strategy = "labeled"
)

// PlatformTemplate is an ordered recipe of component ids. The order of
// Components is the rendering order.
type PlatformTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Components  []string `json:"components"`
	BestFor     []string `json:"bestFor,omitempty"`
}

// Platform groups the templates targeting one AI provider's documented
// prompting style.
type Platform struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Strategy  Strategy           `json:"strategy"`
	Templates []PlatformTemplate `json:"templates"`
}
