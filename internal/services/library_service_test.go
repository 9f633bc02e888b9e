package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"promptstudio-backend/internal/models"
)

func TestCreateLibraryPrompt(t *testing.T) {
	setupTestStore()
	ctx := context.Background()

	p, err := CreateLibraryPrompt(ctx, models.LibraryPrompt{
		Title:  "Weekly newsletter",
		Prompt: "Write a newsletter about {{topic}}",
		Tags:   []string{"email", "marketing"},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Zero(t, p.Likes)

	prompts, _ := ListLibraryPrompts(ctx)
	assert.Len(t, prompts, 1)
}

func TestCreateLibraryPromptValidation(t *testing.T) {
	setupTestStore()
	ctx := context.Background()

	_, err := CreateLibraryPrompt(ctx, models.LibraryPrompt{Prompt: "x"})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = CreateLibraryPrompt(ctx, models.LibraryPrompt{Title: "x"})
	assert.ErrorIs(t, err, ErrPromptTextRequired)
}

func TestUpdateLibraryPrompt(t *testing.T) {
	setupTestStore()
	ctx := context.Background()

	created, _ := CreateLibraryPrompt(ctx, models.LibraryPrompt{Title: "old", Prompt: "p"})

	updated, err := UpdateLibraryPrompt(ctx, created.ID, models.LibraryPrompt{Title: "new", Prompt: "p2"})
	assert.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "new", updated.Title)

	_, err = UpdateLibraryPrompt(ctx, "missing", models.LibraryPrompt{Title: "x", Prompt: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteLibraryPrompt(t *testing.T) {
	setupTestStore()
	ctx := context.Background()

	created, _ := CreateLibraryPrompt(ctx, models.LibraryPrompt{Title: "gone", Prompt: "p"})
	assert.NoError(t, DeleteLibraryPrompt(ctx, created.ID))
	assert.ErrorIs(t, DeleteLibraryPrompt(ctx, created.ID), ErrNotFound)
}
