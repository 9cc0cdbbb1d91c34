// Package cache provides a small string cache used to memoize computed
// recommendation payloads. Entries expire by TTL; nothing here is a source
// of truth.
package cache

import (
	"context"
	"time"
)

// Cache is the read/write surface shared by the Redis and in-memory
// implementations.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
