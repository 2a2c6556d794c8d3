// Package interfaces defines the contracts between the conversion core and
// its infrastructure, so every collaborator can be swapped or mocked.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// It backs short-lived lookups such as API key resolution and refreshed
// credit balances; implementations are go-cache in memory or Redis.
//
//	data, err := cache.Get(ctx, "credits:"+userID)
//	if err != nil {
//		// cache miss, load from storage
//	}
type Cache interface {
	// Get returns the cached bytes or an error on miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
