package models

import "time"

// CustomTemplate is a user-authored template built from selected catalog
// components. The Template string is synthesized by the builder (or later
// hand-edited) and mixes {{id}} interpolation with {{#if id}}...{{/if}}
// conditional markers for optional components. Stored as a JSON array
// under a fixed key, never migrated or versioned.
type CustomTemplate struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Components  []string  `json:"components"`
	Template    string    `json:"template"`
	BestFor     []string  `json:"bestFor,omitempty"`
	Custom      bool      `json:"custom"`
	CreatedAt   time.Time `json:"createdAt"`
}
