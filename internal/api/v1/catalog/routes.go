package catalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/registry", GetRegistry)
	router.GET("/platforms", ListPlatforms)
	router.GET("/use-cases", ListUseCases)
}
