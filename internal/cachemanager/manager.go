// Package cachemanager memoizes values behind a small generic interface.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager stores values by key with per-entry TTLs.
type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K)
	Flush(ctx context.Context)
	Len() int
}
