package library

import "promptstudio-backend/internal/models"

type LibraryPromptRequest struct {
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description"`
	Prompt            string   `json:"prompt" binding:"required"`
	Category          string   `json:"category"`
	Tags              []string `json:"tags"`
	Difficulty        string   `json:"difficulty"`
	UseCase           string   `json:"useCase"`
	Author            string   `json:"author"`
	Likes             int      `json:"likes"`
	Uses              int      `json:"uses"`
	OptimizationScore int      `json:"optimizationScore"`
}

type LibraryListResponse struct {
	Total int                    `json:"total"`
	Items []models.LibraryPrompt `json:"items"`
}

func (r LibraryPromptRequest) toModel() models.LibraryPrompt {
	return models.LibraryPrompt{
		Title:             r.Title,
		Description:       r.Description,
		Prompt:            r.Prompt,
		Category:          r.Category,
		Tags:              r.Tags,
		Difficulty:        r.Difficulty,
		UseCase:           r.UseCase,
		Author:            r.Author,
		Likes:             r.Likes,
		Uses:              r.Uses,
		OptimizationScore: r.OptimizationScore,
	}
}
