package models

type InputType string

const (
	InputTypeShortText    InputType = "short-text"
	InputTypeLongText     InputType = "long-text"
	InputTypeSingleSelect InputType = "single-select"
)

// Option is one selectable value of a single-select component.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Component is a reusable input slot of the prompt generator (task, tone,
// audience, ...). Components are catalog data and never persisted; user
// values for them live only in render requests.
type Component struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	InputType   InputType `json:"inputType"`
	Options     []Option  `json:"options,omitempty"` // non-empty iff InputType is single-select
	Placeholder string    `json:"placeholder,omitempty"`
	Tips        string    `json:"tips,omitempty"`
	Required    bool      `json:"required"`
	// BestPractices maps a platform id to a platform-specific hint.
	// Keys are sparse; not every component has advice for every platform.
	BestPractices map[string]string `json:"bestPractices,omitempty"`
}
