package main

import (
	"log"

	"promptstudio-backend/config"
	"promptstudio-backend/internal/api"
	"promptstudio-backend/internal/database"
	"promptstudio-backend/internal/store"
	"promptstudio-backend/pkg/logger"
)

// @title promptstudio-backend API
// @version 1.0
// @description Prompt-generation engine and client-collection storage for PromptWritingStudio.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	if err := database.DB.AutoMigrate(&store.Entry{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
