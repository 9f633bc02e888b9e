package models

import "time"

// HistoryEntry is a prompt the user explicitly saved. Optimized is filled
// only when the external optimize endpoint was applied to the prompt.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Original  string    `json:"original"`
	Optimized string    `json:"optimized,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category,omitempty"`
}

// LibraryPrompt is a user-created prompt-library entry.
type LibraryPrompt struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	Prompt            string    `json:"prompt"`
	Category          string    `json:"category,omitempty"`
	Tags              []string  `json:"tags,omitempty"`
	Difficulty        string    `json:"difficulty,omitempty"`
	UseCase           string    `json:"useCase,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	Author            string    `json:"author,omitempty"`
	Likes             int       `json:"likes"`
	Uses              int       `json:"uses"`
	OptimizationScore int       `json:"optimizationScore"`
}

// Agent is a saved AI agent configuration.
type Agent struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description,omitempty"`
	Role                 string    `json:"role,omitempty"`
	SystemPrompt         string    `json:"systemPrompt"`
	KnowledgeBase        string    `json:"knowledgeBase,omitempty"`
	Components           []string  `json:"components,omitempty"`
	Category             string    `json:"category,omitempty"`
	ConversationStarters []string  `json:"conversationStarters,omitempty"`
	Instructions         string    `json:"instructions,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
