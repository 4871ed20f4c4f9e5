package ports

import "context"

// ResultCache stores answers as decimal strings.
// Implementations must be safe for concurrent use.
type ResultCache interface {
	// Get returns domain.ErrCacheMiss when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores or replaces the answer for key.
	Set(ctx context.Context, key, value string) error
}
