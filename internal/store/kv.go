// Package store is the persistence port for user-owned collections. The
// contract mirrors a browser local-storage client: JSON blobs under fixed
// string keys, read and written whole, with a missing key meaning empty
// initial state. The engine in internal/prompt never touches this package;
// only the service layer does.
package store

import "context"

// Fixed collection keys. Values are JSON arrays.
const (
	KeyCustomTemplates = "promptstudio:custom_templates"
	KeyHistory         = "promptstudio:prompt_history"
	KeyFavorites       = "promptstudio:favorites"
	KeyLibraryPrompts  = "promptstudio:user_prompts"
	KeyAgents          = "promptstudio:agents"
)

// KV is a minimal key-value JSON store. Get returns (nil, nil) for a
// missing key. No atomicity across keys is promised or needed; each key
// is an independent collection.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Default is the process-wide store, set during startup (and swapped for
// an in-memory database in tests).
var Default KV
