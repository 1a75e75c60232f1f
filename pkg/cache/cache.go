// Package cache provides the façade that mediates every access to the
// remote key-value cache behind the gateway.
package cache

import "context"

// DefaultName is the name of the remote cache used when none is configured.
const DefaultName = "greeting-cache"

// Manager hands out handles to named caches on a remote cache cluster.
//
// GetCache returns (nil, nil) when the cluster has no cache with that name.
// Implementations must be safe for concurrent use.
type Manager interface {
	GetCache(ctx context.Context, name string) (Handle, error)
}

// Handle is a reference to one named cache. Every method is a single
// round-trip to the remote cluster and may fail on network or protocol errors.
type Handle interface {
	Put(ctx context.Context, key, value string) error
	// Get returns found=false when the key is not set.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Clear(ctx context.Context) error
	Size(ctx context.Context) (int, error)
}
