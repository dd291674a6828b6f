package cache

import (
	"context"
	"time"
)

// Store is a key-value store with per-key expiration. Session state lives
// behind this interface so the auth layer does not care whether it talks to
// Redis or to an in-process map.
type Store interface {
	// Set stores a key-value pair with expiration
	Set(ctx context.Context, key, value string, expiration time.Duration) error

	// Get retrieves a value by key; the bool reports presence
	Get(ctx context.Context, key string) (string, bool, error)

	// Delete removes a key
	Delete(ctx context.Context, key string) error
}
