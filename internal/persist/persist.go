package persist

import (
	"context"
	"errors"
)

// Logical namespaces for persisted engine state
const (
	NamespaceCatalog = "catalog"
	NamespaceCart    = "cart"
)

var ErrNotFound = errors.New("no value stored for key")

// Store is the external key-value persistence collaborator. The engine
// treats any load failure as absent data and falls back to defaults,
// never failing hard.
type Store interface {
	// Load returns the stored value, or ErrNotFound
	Load(ctx context.Context, key string) ([]byte, error)

	// Save stores the value under the key
	Save(ctx context.Context, key string, value []byte) error
}

// CartKey builds the per-session cart key
func CartKey(sessionID string) string {
	return NamespaceCart + ":" + sessionID
}
