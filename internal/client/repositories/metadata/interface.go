// Package metadata is a small key/value table in the client's local
// database. The session store keeps tokens and the cached identity in it.
package metadata

import (
	"context"
)

// Repository is what the session store needs from the table.
type Repository interface {
	// SetAll upserts every pair.
	SetAll(ctx context.Context, values map[string][]byte) error
	// Delete is a no-op for an absent key.
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
}
