// Package core holds the repository and cache ports shared by services and the data layer.
package core

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// The data layer provides a Redis implementation.
type CacheRepository interface {
	// Set stores a value with the given TTL. A zero TTL never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns nil (and no error) when the key is missing or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete returns true if the key existed.
	Delete(ctx context.Context, key string) (bool, error)

	// SetIfNotExists atomically sets a key only if it doesn't already exist.
	// Returns true if the key was set.
	SetIfNotExists(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)

	// Health checks the cache connection.
	Health(ctx context.Context) error
}
