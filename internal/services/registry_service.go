package services

import (
	"encoding/json"
	"time"

	"promptstudio-backend/internal/database"
	"promptstudio-backend/internal/models"
	"promptstudio-backend/internal/registry"
)

const (
	RegistryCacheKey      = "promptstudio:registry:export"
	RegistryCacheDuration = 1 * time.Hour
)

// RegistryExport is the static-catalog bundle served to clients so the
// same data drives server-side rendering and client-side pickers.
type RegistryExport struct {
	Components []models.Component       `json:"components"`
	Platforms  []models.Platform        `json:"platforms"`
	UseCases   []models.UseCaseTemplate `json:"useCases"`
}

// GetRegistryExportCached returns the catalog bundle, serving the redis
// copy when present. The catalogs are compiled in, so the cache only saves
// marshaling; it exists because every page load fetches this blob.
func GetRegistryExportCached() (RegistryExport, error) {
	val, err := database.RedisClient.Get(database.Ctx, RegistryCacheKey).Result()
	if err == nil {
		var export RegistryExport
		if err := json.Unmarshal([]byte(val), &export); err == nil {
			return export, nil
		}
	}

	export := RegistryExport{
		Components: registry.Components(),
		Platforms:  registry.Platforms(),
		UseCases:   registry.UseCases(),
	}

	if data, err := json.Marshal(export); err == nil {
		database.RedisClient.Set(database.Ctx, RegistryCacheKey, data, RegistryCacheDuration)
	}

	return export, nil
}
