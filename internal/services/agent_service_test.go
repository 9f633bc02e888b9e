package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"promptstudio-backend/internal/models"
)

func TestCreateAgent(t *testing.T) {
	setupTestStore()
	ctx := context.Background()

	agent, err := CreateAgent(ctx, models.Agent{
		Name:         "Research Assistant",
		SystemPrompt: "You are a careful research assistant.",
		Category:     "research",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, agent.ID)
	assert.Equal(t, agent.CreatedAt, agent.UpdatedAt)

	agents, _ := ListAgents(ctx)
	assert.Len(t, agents, 1)
}

func TestCreateAgentValidation(t *testing.T) {
	setupTestStore()
	ctx := context.Background()

	_, err := CreateAgent(ctx, models.Agent{SystemPrompt: "x"})
	assert.ErrorIs(t, err, ErrAgentNameRequired)

	_, err = CreateAgent(ctx, models.Agent{Name: "x"})
	assert.ErrorIs(t, err, ErrSystemPromptMissing)
}

func TestUpdateAgentKeepsCreatedAt(t *testing.T) {
	setupTestStore()
	ctx := context.Background()

	created, _ := CreateAgent(ctx, models.Agent{Name: "v1", SystemPrompt: "old"})

	updated, err := UpdateAgent(ctx, created.ID, models.Agent{Name: "v2", SystemPrompt: "new"})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "v2", updated.Name)

	_, err = UpdateAgent(ctx, "missing", models.Agent{Name: "x", SystemPrompt: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAgent(t *testing.T) {
	setupTestStore()
	ctx := context.Background()

	created, _ := CreateAgent(ctx, models.Agent{Name: "gone", SystemPrompt: "x"})
	assert.NoError(t, DeleteAgent(ctx, created.ID))
	assert.ErrorIs(t, DeleteAgent(ctx, created.ID), ErrNotFound)
}
