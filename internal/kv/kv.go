// Package kv provides the string-keyed, string-valued persistent store the
// shop aggregates live in, with in-memory, SQLite and PostgreSQL backends.
package kv

import (
	"context"
	"errors"
	"fmt"
)

// ErrStorage marks every failure that originates in a backend. Callers
// surface it as a generic, retryable storage failure.
var ErrStorage = errors.New("storage failure")

// Store is a durable key-value store. Writes are last-write-wins; there are
// no transactions across keys.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	Close() error
}

func storageErr(op, key string, err error) error {
	return fmt.Errorf("%w: %s %q: %w", ErrStorage, op, key, err)
}
