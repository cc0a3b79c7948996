// Package cache provides the pluggable byte cache used for rendered author
// banners and card fragments, with in-memory and Redis backends.
package cache

import (
	"context"
	"time"
)

// Backend is the cache contract. Implementations are safe for concurrent use.
type Backend interface {
	// Get retrieves a value. found is false for both missing and expired keys.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
