package library

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptstudio-backend/internal/services"
	"promptstudio-backend/internal/utils"
)

// ListPrompts godoc
// @Summary List library prompts
// @Tags library
// @Produce json
// @Success 200 {object} utils.Response{data=LibraryListResponse}
// @Router /library [get]
func ListPrompts(c *gin.Context) {
	items, err := services.ListLibraryPrompts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", LibraryListResponse{
		Total: len(items),
		Items: items,
	}))
}

// CreatePrompt godoc
// @Summary Create a library prompt
// @Tags library
// @Accept json
// @Produce json
// @Param request body LibraryPromptRequest true "Library Prompt Request"
// @Success 200 {object} utils.Response{data=models.LibraryPrompt}
// @Failure 400 {object} utils.Response
// @Router /library [post]
func CreatePrompt(c *gin.Context) {
	var req LibraryPromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	created, err := services.CreateLibraryPrompt(c.Request.Context(), req.toModel())
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) || errors.Is(err, services.ErrPromptTextRequired) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt created successfully", created))
}

// UpdatePrompt godoc
// @Summary Update a library prompt
// @Tags library
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param request body LibraryPromptRequest true "Library Prompt Request"
// @Success 200 {object} utils.Response{data=models.LibraryPrompt}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /library/{id} [put]
func UpdatePrompt(c *gin.Context) {
	var req LibraryPromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updated, err := services.UpdateLibraryPrompt(c.Request.Context(), c.Param("id"), req.toModel())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Prompt not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt updated successfully", updated))
}

// DeletePrompt godoc
// @Summary Delete a library prompt
// @Tags library
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /library/{id} [delete]
func DeletePrompt(c *gin.Context) {
	err := services.DeleteLibraryPrompt(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Prompt not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt deleted successfully", nil))
}
