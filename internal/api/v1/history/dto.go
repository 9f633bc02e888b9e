package history

import "promptstudio-backend/internal/models"

type SaveHistoryRequest struct {
	Original  string `json:"original" binding:"required"`
	Optimized string `json:"optimized"`
	Category  string `json:"category"`
}

type HistoryListResponse struct {
	Total int                   `json:"total"`
	Items []models.HistoryEntry `json:"items"`
}

type FavoriteRequest struct {
	ID string `json:"id" binding:"required"`
}
