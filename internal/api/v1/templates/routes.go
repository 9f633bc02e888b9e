package templates

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	tpl := router.Group("/templates")
	{
		tpl.GET("", ListTemplates)
		tpl.POST("", SaveTemplate)
		tpl.DELETE("/:name", DeleteTemplate)
		tpl.POST("/synthesize", Synthesize)
		tpl.POST("/preview", Preview)
	}
}
