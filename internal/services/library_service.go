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

var ErrTitleRequired = errors.New("title is required")

// ListLibraryPrompts returns the user's prompt-library entries.
func ListLibraryPrompts(ctx context.Context) ([]models.LibraryPrompt, error) {
	return readCollection[models.LibraryPrompt](ctx, store.KeyLibraryPrompts)
}

// CreateLibraryPrompt stores a new library entry.
func CreateLibraryPrompt(ctx context.Context, p models.LibraryPrompt) (models.LibraryPrompt, error) {
	if strings.TrimSpace(p.Title) == "" {
		return models.LibraryPrompt{}, ErrTitleRequired
	}
	if strings.TrimSpace(p.Prompt) == "" {
		return models.LibraryPrompt{}, ErrPromptTextRequired
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	prompts, err := ListLibraryPrompts(ctx)
	if err != nil {
		return models.LibraryPrompt{}, err
	}
	prompts = append(prompts, p)

	if err := writeCollection(ctx, store.KeyLibraryPrompts, prompts); err != nil {
		return models.LibraryPrompt{}, err
	}
	return p, nil
}

// UpdateLibraryPrompt replaces an entry, keeping its id and creation time.
func UpdateLibraryPrompt(ctx context.Context, id string, p models.LibraryPrompt) (models.LibraryPrompt, error) {
	if strings.TrimSpace(p.Title) == "" {
		return models.LibraryPrompt{}, ErrTitleRequired
	}
	if strings.TrimSpace(p.Prompt) == "" {
		return models.LibraryPrompt{}, ErrPromptTextRequired
	}

	prompts, err := ListLibraryPrompts(ctx)
	if err != nil {
		return models.LibraryPrompt{}, err
	}

	for i := range prompts {
		if prompts[i].ID == id {
			p.ID = id
			p.CreatedAt = prompts[i].CreatedAt
			p.UpdatedAt = time.Now().UTC()
			prompts[i] = p
			if err := writeCollection(ctx, store.KeyLibraryPrompts, prompts); err != nil {
				return models.LibraryPrompt{}, err
			}
			return p, nil
		}
	}
	return models.LibraryPrompt{}, ErrNotFound
}

// DeleteLibraryPrompt removes an entry by id.
func DeleteLibraryPrompt(ctx context.Context, id string) error {
	prompts, err := ListLibraryPrompts(ctx)
	if err != nil {
		return err
	}

	kept := prompts[:0]
	for _, p := range prompts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(prompts) {
		return ErrNotFound
	}
	return writeCollection(ctx, store.KeyLibraryPrompts, kept)
}
