// Package storage defines the durable key-value slots a learnkit session
// persists itself into, plus memory, file, and Redis backends.
//
// The session uses exactly two string-valued entries, "token" and "user".
// Each key is a single mutable slot: last writer wins, and no cross-process
// coordination is attempted beyond the backend's own atomicity.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

// Store is a durable string-keyed slot store. Implementations must be safe
// for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
