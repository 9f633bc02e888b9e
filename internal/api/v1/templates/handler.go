package templates

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptstudio-backend/internal/models"
	"promptstudio-backend/internal/prompt"
	"promptstudio-backend/internal/services"
	"promptstudio-backend/internal/utils"
)

// ListTemplates godoc
// @Summary List custom templates
// @Tags templates
// @Produce json
// @Success 200 {object} utils.Response{data=TemplateListResponse}
// @Router /templates [get]
func ListTemplates(c *gin.Context) {
	items, err := services.ListCustomTemplates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", TemplateListResponse{
		Total: len(items),
		Items: items,
	}))
}

// SaveTemplate godoc
// @Summary Save a custom template
// @Description Saves a builder template. A template without a name or with no components is rejected whole; nothing is persisted. When no template string is sent, one is synthesized from the component selection.
// @Tags templates
// @Accept json
// @Produce json
// @Param request body SaveTemplateRequest true "Save Template Request"
// @Success 200 {object} utils.Response{data=models.CustomTemplate}
// @Failure 400 {object} utils.Response
// @Router /templates [post]
func SaveTemplate(c *gin.Context) {
	var req SaveTemplateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	saved, err := services.SaveCustomTemplate(c.Request.Context(), models.CustomTemplate{
		Name:        req.Name,
		Description: req.Description,
		Components:  req.Components,
		Template:    req.Template,
		BestFor:     req.BestFor,
	})
	if err != nil {
		var parseErr *prompt.ParseError
		switch {
		case errors.Is(err, services.ErrTemplateNameRequired),
			errors.Is(err, services.ErrNoComponentsSelected),
			errors.As(err, &parseErr):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Template saved successfully", saved))
}

// DeleteTemplate godoc
// @Summary Delete a custom template
// @Tags templates
// @Produce json
// @Param name path string true "Template name"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /templates/{name} [delete]
func DeleteTemplate(c *gin.Context) {
	err := services.DeleteCustomTemplate(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Template not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Template deleted successfully", nil))
}

// Synthesize godoc
// @Summary Synthesize a template from components
// @Description Builds a template string from an ordered component selection: plain slots for required components, conditional blocks for optional ones.
// @Tags templates
// @Accept json
// @Produce json
// @Param request body SynthesizeRequest true "Synthesize Request"
// @Success 200 {object} utils.Response{data=SynthesizeResponse}
// @Failure 400 {object} utils.Response
// @Router /templates/synthesize [post]
func Synthesize(c *gin.Context) {
	var req SynthesizeRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", SynthesizeResponse{
		Template: prompt.Synthesize(req.Components),
	}))
}

// Preview godoc
// @Summary Preview a template with sample data
// @Description Compiles a template for display. Conditional blocks are stripped, not evaluated, so every optional section shows with sample data. A malformed template returns the parse error inline.
// @Tags templates
// @Accept json
// @Produce json
// @Param request body PreviewRequest true "Preview Request"
// @Success 200 {object} utils.Response{data=PreviewResponse}
// @Failure 400 {object} utils.Response
// @Router /templates/preview [post]
func Preview(c *gin.Context) {
	var req PreviewRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	values := req.Values
	if len(values) == 0 {
		values = prompt.SampleValues()
	}

	rendered, err := prompt.Preview(req.Template, values)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", PreviewResponse{Preview: rendered}))
}
