package services

import (
	"context"
	"encoding/json"
	"errors"

	"promptstudio-backend/internal/store"
)

// ErrNotFound is returned when a delete or update targets a record that is
// not in its collection.
var ErrNotFound = errors.New("not found")

// readCollection loads a whole collection from the store. A missing key is
// an empty collection, never an error.
func readCollection[T any](ctx context.Context, key string) ([]T, error) {
	raw, err := store.Default.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func writeCollection[T any](ctx context.Context, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return store.Default.Set(ctx, key, raw)
}
