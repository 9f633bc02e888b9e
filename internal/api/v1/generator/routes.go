package generator

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	gen := router.Group("/generate")
	{
		gen.POST("", Generate)
		gen.POST("/use-case", GenerateFromUseCase)
	}
}
