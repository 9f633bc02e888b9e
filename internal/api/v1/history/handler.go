package history

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptstudio-backend/internal/models"
	"promptstudio-backend/internal/services"
	"promptstudio-backend/internal/utils"
)

// ListHistory godoc
// @Summary List saved prompts
// @Tags history
// @Produce json
// @Success 200 {object} utils.Response{data=HistoryListResponse}
// @Router /history [get]
func ListHistory(c *gin.Context) {
	items, err := services.ListHistory(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", HistoryListResponse{
		Total: len(items),
		Items: items,
	}))
}

// SaveHistory godoc
// @Summary Save a generated prompt
// @Tags history
// @Accept json
// @Produce json
// @Param request body SaveHistoryRequest true "Save History Request"
// @Success 200 {object} utils.Response{data=models.HistoryEntry}
// @Failure 400 {object} utils.Response
// @Router /history [post]
func SaveHistory(c *gin.Context) {
	var req SaveHistoryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	entry, err := services.SaveHistory(c.Request.Context(), models.HistoryEntry{
		Original:  req.Original,
		Optimized: req.Optimized,
		Category:  req.Category,
	})
	if err != nil {
		if errors.Is(err, services.ErrPromptTextRequired) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt saved successfully", entry))
}

// DeleteHistory godoc
// @Summary Delete a saved prompt
// @Tags history
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /history/{id} [delete]
func DeleteHistory(c *gin.Context) {
	err := services.DeleteHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Entry not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Entry deleted successfully", nil))
}

// ListFavorites godoc
// @Summary List favorite prompt ids
// @Tags history
// @Produce json
// @Success 200 {object} utils.Response{data=[]string}
// @Router /favorites [get]
func ListFavorites(c *gin.Context) {
	ids, err := services.ListFavorites(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ids))
}

// AddFavorite godoc
// @Summary Mark a prompt as favorite
// @Tags history
// @Accept json
// @Produce json
// @Param request body FavoriteRequest true "Favorite Request"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /favorites [post]
func AddFavorite(c *gin.Context) {
	var req FavoriteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if err := services.AddFavorite(c.Request.Context(), req.ID); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Favorite added", nil))
}

// RemoveFavorite godoc
// @Summary Unmark a favorite
// @Tags history
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} utils.Response
// @Router /favorites/{id} [delete]
func RemoveFavorite(c *gin.Context) {
	if err := services.RemoveFavorite(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Favorite removed", nil))
}
