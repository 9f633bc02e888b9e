package generator

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptstudio-backend/internal/prompt"
	"promptstudio-backend/internal/utils"
)

// Generate godoc
// @Summary Render a platform template
// @Description Renders the selected platform template against the supplied component values. Empty optional components are omitted from the output.
// @Tags generator
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Generate Request"
// @Success 200 {object} utils.Response{data=GenerateResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /generate [post]
func Generate(c *gin.Context) {
	var req GenerateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	rendered, err := prompt.Generate(req.Platform, req.Template, req.Values)
	if err != nil {
		if errors.Is(err, prompt.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", GenerateResponse{Prompt: rendered}))
}

// GenerateFromUseCase godoc
// @Summary Render a use-case template
// @Description Interpolates the use-case template's variables and returns the prompt with the recommended platform.
// @Tags generator
// @Accept json
// @Produce json
// @Param request body UseCaseGenerateRequest true "Use Case Generate Request"
// @Success 200 {object} utils.Response{data=UseCaseGenerateResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /generate/use-case [post]
func GenerateFromUseCase(c *gin.Context) {
	var req UseCaseGenerateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	result, err := prompt.GenerateFromUseCase(req.UseCase, req.Values)
	if err != nil {
		if errors.Is(err, prompt.ErrUseCaseNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", UseCaseGenerateResponse{
		Prompt:   result.Prompt,
		Platform: result.Platform,
	}))
}
