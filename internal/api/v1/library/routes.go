package library

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	lib := router.Group("/library")
	{
		lib.GET("", ListPrompts)
		lib.POST("", CreatePrompt)
		lib.PUT("/:id", UpdatePrompt)
		lib.DELETE("/:id", DeletePrompt)
	}
}
