// Package store persists serialized game snapshots in a key-value store.
// One key per player, whole snapshot per value; concurrent requests for the
// same player are serialized here, not in the simulation core.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("store: key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
