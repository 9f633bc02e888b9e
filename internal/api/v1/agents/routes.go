package agents

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	ag := router.Group("/agents")
	{
		ag.GET("", ListAgents)
		ag.POST("", CreateAgent)
		ag.PUT("/:id", UpdateAgent)
		ag.DELETE("/:id", DeleteAgent)
	}
}
