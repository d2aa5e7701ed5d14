// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"
)

var ErrClosed = errors.New("store is closed")

// Tx is the read/write view of the store inside a single operation.
// An absent key is reported through the found flag, never as an error.
type Tx interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Store runs operations as atomic units. Update commits every write made by fn
// when fn returns nil and discards all of them otherwise. Implementations
// serialize Update calls.
type Store interface {
	Update(ctx context.Context, fn func(tx Tx) error) error
	View(ctx context.Context, fn func(tx Tx) error) error
	Close() error
}
