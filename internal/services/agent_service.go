package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"promptstudio-backend/internal/models"
	"promptstudio-backend/internal/store"
)

var (
	ErrAgentNameRequired   = errors.New("agent name is required")
	ErrSystemPromptMissing = errors.New("system prompt is required")
)

// ListAgents returns the saved agent configurations.
func ListAgents(ctx context.Context) ([]models.Agent, error) {
	return readCollection[models.Agent](ctx, store.KeyAgents)
}

// CreateAgent stores a new agent configuration.
func CreateAgent(ctx context.Context, a models.Agent) (models.Agent, error) {
	if strings.TrimSpace(a.Name) == "" {
		return models.Agent{}, ErrAgentNameRequired
	}
	if strings.TrimSpace(a.SystemPrompt) == "" {
		return models.Agent{}, ErrSystemPromptMissing
	}

	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now

	agents, err := ListAgents(ctx)
	if err != nil {
		return models.Agent{}, err
	}
	agents = append(agents, a)

	if err := writeCollection(ctx, store.KeyAgents, agents); err != nil {
		return models.Agent{}, err
	}
	return a, nil
}

// UpdateAgent replaces an agent, keeping its id and creation time.
func UpdateAgent(ctx context.Context, id string, a models.Agent) (models.Agent, error) {
	if strings.TrimSpace(a.Name) == "" {
		return models.Agent{}, ErrAgentNameRequired
	}
	if strings.TrimSpace(a.SystemPrompt) == "" {
		return models.Agent{}, ErrSystemPromptMissing
	}

	agents, err := ListAgents(ctx)
	if err != nil {
		return models.Agent{}, err
	}

	for i := range agents {
		if agents[i].ID == id {
			a.ID = id
			a.CreatedAt = agents[i].CreatedAt
			a.UpdatedAt = time.Now().UTC()
			agents[i] = a
			if err := writeCollection(ctx, store.KeyAgents, agents); err != nil {
				return models.Agent{}, err
			}
			return a, nil
		}
	}
	return models.Agent{}, ErrNotFound
}

// DeleteAgent removes an agent by id.
func DeleteAgent(ctx context.Context, id string) error {
	agents, err := ListAgents(ctx)
	if err != nil {
		return err
	}

	kept := agents[:0]
	for _, a := range agents {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(agents) {
		return ErrNotFound
	}
	return writeCollection(ctx, store.KeyAgents, kept)
}
