package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"promptstudio-backend/internal/database"
	"promptstudio-backend/internal/models"
	"promptstudio-backend/internal/store"
)

func setupTestStore() {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&store.Entry{}); err != nil {
		panic("failed to migrate database")
	}
	store.Default = store.NewGormKV(db)
}

func setupTestRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func TestSaveCustomTemplateSynthesizes(t *testing.T) {
	setupTestStore()
	ctx := context.Background()

	saved, err := SaveCustomTemplate(ctx, models.CustomTemplate{
		Name:       "My Builder Template",
		Components: []string{"task", "tone"},
	})
	assert.NoError(t, err)
	assert.True(t, saved.Custom)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Contains(t, saved.Template, "{{task}}")
	assert.Contains(t, saved.Template, "{{#if tone}}")

	templates, err := ListCustomTemplates(ctx)
	assert.NoError(t, err)
	assert.Len(t, templates, 1)
}

func TestSaveCustomTemplateKeepsHandEditedTemplate(t *testing.T) {
	setupTestStore()
	ctx := context.Background()

	saved, err := SaveCustomTemplate(ctx, models.CustomTemplate{
		Name:       "Edited",
		Components: []string{"task"},
		Template:   "Do this: {{task}}",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Do this: {{task}}", saved.Template)
}

func TestSaveCustomTemplateEmptyNameRejected(t *testing.T) {
	setupTestStore()
	ctx := context.Background()

	_, err := SaveCustomTemplate(ctx, models.CustomTemplate{
		Name:       "   ",
		Components: []string{"task"},
	})
	assert.ErrorIs(t, err, ErrTemplateNameRequired)

	// Rejected saves must not touch the collection.
	templates, err := ListCustomTemplates(ctx)
	assert.NoError(t, err)
	assert.Empty(t, templates)
}

func TestSaveCustomTemplateNoComponentsRejected(t *testing.T) {
	setupTestStore()
	ctx := context.Background()

	_, err := SaveCustomTemplate(ctx, models.CustomTemplate{Name: "No Parts"})
	assert.ErrorIs(t, err, ErrNoComponentsSelected)

	templates, _ := ListCustomTemplates(ctx)
	assert.Empty(t, templates)
}

func TestSaveCustomTemplateMalformedTemplateRejected(t *testing.T) {
	setupTestStore()
	ctx := context.Background()

	_, err := SaveCustomTemplate(ctx, models.CustomTemplate{
		Name:       "Broken",
		Components: []string{"task"},
		Template:   "{{#if task}}never closed",
	})
	assert.Error(t, err)

	templates, _ := ListCustomTemplates(ctx)
	assert.Empty(t, templates)
}

func TestDeleteCustomTemplate(t *testing.T) {
	setupTestStore()
	ctx := context.Background()

	_, err := SaveCustomTemplate(ctx, models.CustomTemplate{Name: "Keep", Components: []string{"task"}})
	assert.NoError(t, err)
	_, err = SaveCustomTemplate(ctx, models.CustomTemplate{Name: "Drop", Components: []string{"task"}})
	assert.NoError(t, err)

	assert.NoError(t, DeleteCustomTemplate(ctx, "Drop"))

	templates, _ := ListCustomTemplates(ctx)
	assert.Len(t, templates, 1)
	assert.Equal(t, "Keep", templates[0].Name)

	assert.ErrorIs(t, DeleteCustomTemplate(ctx, "Drop"), ErrNotFound)
}
