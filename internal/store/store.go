// Package store provides the key-value state store used for prediction
// caching, cooldown entries, monitoring state, and bounded intervention
// history. All cross-cycle state expires via TTL; nothing requires explicit
// cleanup.
package store

import (
	"context"
	"time"
)

// Store is the narrow key-value contract the engine depends on. It is
// injected at construction so tests and Redis-less deployments can swap the
// backend.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key with the given TTL (0 = no expiry).
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// SetIfAbsent atomically stores value under key with the given TTL only
	// when the key does not exist. Returns true when the value was set. This
	// is the single atomic check-then-set the cooldown ledger relies on.
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// ListPush prepends value to the list at key, trims the list to maxLen
	// entries, and refreshes the TTL.
	ListPush(ctx context.Context, key, value string, maxLen int64, ttl time.Duration) error
	// ListRange returns list entries [start, stop], newest first.
	ListRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}
