package agents

import "promptstudio-backend/internal/models"

type AgentRequest struct {
	Name                 string   `json:"name" binding:"required"`
	Description          string   `json:"description"`
	Role                 string   `json:"role"`
	SystemPrompt         string   `json:"systemPrompt" binding:"required"`
	KnowledgeBase        string   `json:"knowledgeBase"`
	Components           []string `json:"components"`
	Category             string   `json:"category"`
	ConversationStarters []string `json:"conversationStarters"`
	Instructions         string   `json:"instructions"`
}

type AgentListResponse struct {
	Total int            `json:"total"`
	Items []models.Agent `json:"items"`
}

func (r AgentRequest) toModel() models.Agent {
	return models.Agent{
		Name:                 r.Name,
		Description:          r.Description,
		Role:                 r.Role,
		SystemPrompt:         r.SystemPrompt,
		KnowledgeBase:        r.KnowledgeBase,
		Components:           r.Components,
		Category:             r.Category,
		ConversationStarters: r.ConversationStarters,
		Instructions:         r.Instructions,
	}
}
