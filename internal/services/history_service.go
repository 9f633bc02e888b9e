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

var ErrPromptTextRequired = errors.New("prompt text is required")

// ListHistory returns saved prompts, newest first.
func ListHistory(ctx context.Context) ([]models.HistoryEntry, error) {
	return readCollection[models.HistoryEntry](ctx, store.KeyHistory)
}

// SaveHistory stores a prompt the user chose to keep. The server assigns
// the id and timestamp; new entries go to the front of the list.
func SaveHistory(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error) {
	if strings.TrimSpace(entry.Original) == "" {
		return models.HistoryEntry{}, ErrPromptTextRequired
	}

	entry.ID = uuid.NewString()
	entry.Timestamp = time.Now().UTC()

	entries, err := ListHistory(ctx)
	if err != nil {
		return models.HistoryEntry{}, err
	}
	entries = append([]models.HistoryEntry{entry}, entries...)

	if err := writeCollection(ctx, store.KeyHistory, entries); err != nil {
		return models.HistoryEntry{}, err
	}
	return entry, nil
}

// DeleteHistory removes one entry by id.
func DeleteHistory(ctx context.Context, id string) error {
	entries, err := ListHistory(ctx)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return ErrNotFound
	}
	return writeCollection(ctx, store.KeyHistory, kept)
}

// ListFavorites returns the favorited prompt ids. Favorites reference
// history or library entries by id only; a favorite may outlive the record
// it points at, and that is accepted.
func ListFavorites(ctx context.Context) ([]string, error) {
	return readCollection[string](ctx, store.KeyFavorites)
}

// AddFavorite records an id. Adding an existing favorite is a no-op.
func AddFavorite(ctx context.Context, id string) error {
	ids, err := ListFavorites(ctx)
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return writeCollection(ctx, store.KeyFavorites, append(ids, id))
}

// RemoveFavorite drops an id; removing a missing one is a no-op.
func RemoveFavorite(ctx context.Context, id string) error {
	ids, err := ListFavorites(ctx)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return writeCollection(ctx, store.KeyFavorites, kept)
}
