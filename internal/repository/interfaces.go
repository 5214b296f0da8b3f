package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KVStore.Get for missing keys.
var ErrNotFound = errors.New("key not found")

// KVStore is the persistence port. The game persists every logical record as
// an opaque JSON string under a well-known key; no atomicity is guaranteed
// across keys. The production adapter is Postgres-backed, tests use the
// in-memory adapter.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
