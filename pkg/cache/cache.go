// Package cache stores compiled PDF artifacts keyed by the hash of their
// LaTeX source.
//
// Keys are content-addressed, so entries never go stale and carry no TTL: the
// same source always compiles to an equivalent PDF. Backends:
//   - file: per-entry files under a cache directory, for CLI usage
//   - redis: shared cache for server deployments
//   - null: disables caching entirely
package cache

import "context"

// Cache is the interface for compiled-artifact storage backends.
type Cache interface {
	// Get retrieves an entry. The second return value is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores an entry, overwriting any previous value for the key.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes an entry. Deleting a missing entry is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// PDFKey builds the cache key for a compiled PDF from its LaTeX source.
func PDFKey(texSource []byte) string {
	return "pdf:" + Hash(texSource)
}
