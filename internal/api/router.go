package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"promptstudio-backend/config"
	_ "promptstudio-backend/docs"
	"promptstudio-backend/internal/api/v1/agents"
	"promptstudio-backend/internal/api/v1/catalog"
	"promptstudio-backend/internal/api/v1/generator"
	"promptstudio-backend/internal/api/v1/history"
	"promptstudio-backend/internal/api/v1/library"
	"promptstudio-backend/internal/api/v1/templates"
	"promptstudio-backend/internal/database"
	"promptstudio-backend/internal/middleware"
	"promptstudio-backend/internal/store"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if err := database.ConnectRedis(cfg); err != nil {
		return nil, err
	}

	store.Default = store.NewGormKV(db)

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1. No authentication; everything is client-local data.
	v1 := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(v1)
		generator.RegisterRoutes(v1)
		templates.RegisterRoutes(v1)
		history.RegisterRoutes(v1)
		library.RegisterRoutes(v1)
		agents.RegisterRoutes(v1)
	}

	return router, nil
}
