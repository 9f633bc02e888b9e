package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"promptstudio-backend/internal/models"
	"promptstudio-backend/internal/prompt"
	"promptstudio-backend/internal/store"
)

var (
	ErrTemplateNameRequired = errors.New("template name is required")
	ErrNoComponentsSelected = errors.New("select at least one component")
)

// ListCustomTemplates returns all saved user templates.
func ListCustomTemplates(ctx context.Context) ([]models.CustomTemplate, error) {
	return readCollection[models.CustomTemplate](ctx, store.KeyCustomTemplates)
}

// SaveCustomTemplate validates and appends a user template. An invalid
// template is rejected whole; the stored collection is never partially
// written. When the client sends no template string, one is synthesized
// from the component selection.
func SaveCustomTemplate(ctx context.Context, t models.CustomTemplate) (models.CustomTemplate, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return models.CustomTemplate{}, ErrTemplateNameRequired
	}
	if len(t.Components) == 0 {
		return models.CustomTemplate{}, ErrNoComponentsSelected
	}

	if t.Template == "" {
		t.Template = prompt.Synthesize(t.Components)
	} else {
		// Hand-edited templates must at least parse.
		if _, err := prompt.Parse(t.Template); err != nil {
			return models.CustomTemplate{}, err
		}
	}

	t.Custom = true
	t.CreatedAt = time.Now().UTC()

	templates, err := ListCustomTemplates(ctx)
	if err != nil {
		return models.CustomTemplate{}, err
	}
	templates = append(templates, t)

	if err := writeCollection(ctx, store.KeyCustomTemplates, templates); err != nil {
		return models.CustomTemplate{}, err
	}
	return t, nil
}

// DeleteCustomTemplate removes a template by name.
func DeleteCustomTemplate(ctx context.Context, name string) error {
	templates, err := ListCustomTemplates(ctx)
	if err != nil {
		return err
	}

	kept := templates[:0]
	for _, t := range templates {
		if t.Name != name {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(templates) {
		return ErrNotFound
	}
	return writeCollection(ctx, store.KeyCustomTemplates, kept)
}
