package history

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	h := router.Group("/history")
	{
		h.GET("", ListHistory)
		h.POST("", SaveHistory)
		h.DELETE("/:id", DeleteHistory)
	}

	f := router.Group("/favorites")
	{
		f.GET("", ListFavorites)
		f.POST("", AddFavorite)
		f.DELETE("/:id", RemoveFavorite)
	}
}
