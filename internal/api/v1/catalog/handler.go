package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptstudio-backend/internal/registry"
	"promptstudio-backend/internal/services"
	"promptstudio-backend/internal/utils"
)

// GetRegistry godoc
// @Summary Full catalog export
// @Description Components, platform templates, and use-case templates as one static JSON bundle
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.Response{data=services.RegistryExport}
// @Router /registry [get]
func GetRegistry(c *gin.Context) {
	export, err := services.GetRegistryExportCached()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", export))
}

// ListPlatforms godoc
// @Summary List platforms and their templates
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.Platform}
// @Router /platforms [get]
func ListPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", registry.Platforms()))
}

// ListUseCases godoc
// @Summary List use-case templates
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.UseCaseTemplate}
// @Router /use-cases [get]
func ListUseCases(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", registry.UseCases()))
}
