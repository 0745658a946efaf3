// Package storage persists named snapshots: one JSON blob per key,
// overwritten wholesale on every save. It is the stand-in for the original
// system's browser-local key-value storage.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound reports an absent key. Absence is distinct from an empty
// value: a key that was never saved returns ErrNotFound, a key saved with an
// empty blob returns the empty blob.
var ErrNotFound = errors.New("snapshot not found")

type Snapshots interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
