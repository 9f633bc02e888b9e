package models

// Variable is an input slot scoped to a single use-case template. It is
// shaped like a Component but lives in the use case's own namespace, so a
// variable id may collide with a catalog component id without relation.
type Variable struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	InputType   InputType `json:"inputType"`
	Options     []Option  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Required    bool      `json:"required"`
}

// UseCaseTemplate is a self-contained scenario template: its own variable
// set, a fixed template string with {{variableId}} placeholders, and the
// platform recommended for the result.
type UseCaseTemplate struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Variables   []Variable `json:"variables"`
	Template    string     `json:"template"`
	Platform    string     `json:"platform"`
}
