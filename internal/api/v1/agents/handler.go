package agents

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptstudio-backend/internal/services"
	"promptstudio-backend/internal/utils"
)

// ListAgents godoc
// @Summary List saved agents
// @Tags agents
// @Produce json
// @Success 200 {object} utils.Response{data=AgentListResponse}
// @Router /agents [get]
func ListAgents(c *gin.Context) {
	items, err := services.ListAgents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", AgentListResponse{
		Total: len(items),
		Items: items,
	}))
}

// CreateAgent godoc
// @Summary Create an agent
// @Tags agents
// @Accept json
// @Produce json
// @Param request body AgentRequest true "Agent Request"
// @Success 200 {object} utils.Response{data=models.Agent}
// @Failure 400 {object} utils.Response
// @Router /agents [post]
func CreateAgent(c *gin.Context) {
	var req AgentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	created, err := services.CreateAgent(c.Request.Context(), req.toModel())
	if err != nil {
		if errors.Is(err, services.ErrAgentNameRequired) || errors.Is(err, services.ErrSystemPromptMissing) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Agent created successfully", created))
}

// UpdateAgent godoc
// @Summary Update an agent
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param request body AgentRequest true "Agent Request"
// @Success 200 {object} utils.Response{data=models.Agent}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /agents/{id} [put]
func UpdateAgent(c *gin.Context) {
	var req AgentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updated, err := services.UpdateAgent(c.Request.Context(), c.Param("id"), req.toModel())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Agent not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Agent updated successfully", updated))
}

// DeleteAgent godoc
// @Summary Delete an agent
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /agents/{id} [delete]
func DeleteAgent(c *gin.Context) {
	err := services.DeleteAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Agent not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Agent deleted successfully", nil))
}
