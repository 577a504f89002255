// Package storage keeps session-scoped values under string keys. Values expire
// together with the session they belong to.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key is absent or expired.
var ErrNotFound = errors.New("key not found")

// Store is a key-value store with per-key expiry. A zero ttl keeps the value
// until it is deleted.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Touch resets the expiry of the existing keys among keys to ttl.
	Touch(ctx context.Context, ttl time.Duration, keys ...string) error
}
