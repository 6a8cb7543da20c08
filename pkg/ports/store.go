package ports

import "context"

// ScriptStore persists serialized script graphs.
// This is the "load bytes for path" service the runtime consumes.
type ScriptStore interface {
	// Save persists the encoded script under assetID, replacing any previous version.
	Save(ctx context.Context, assetID string, data []byte) error

	// Load retrieves the encoded script.
	// Returns domain.ErrScriptNotFound if the asset does not exist.
	Load(ctx context.Context, assetID string) ([]byte, error)

	// Delete removes the asset. Deleting a missing asset is not an error.
	Delete(ctx context.Context, assetID string) error

	// List returns the ids of all stored assets.
	List(ctx context.Context) ([]string, error)
}
