// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mem

import (
	"context"
	"errors"
	"sync"

	"github.com/danielhkuo/voting-org/storage"
)

var _ storage.Store = (*Store)(nil)

var errReadOnly = errors.New("write in read-only transaction")

// Store is an in-memory storage.Store. Writes made inside Update are buffered
// and applied only when the callback succeeds.
type Store struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

func NewMemStore() *Store {
	return &Store{
		data: map[string][]byte{},
	}
}

func (s *Store) Update(ctx context.Context, fn func(tx storage.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memTx{
		base:    s.data,
		writes:  map[string][]byte{},
		removed: map[string]bool{},
	}
	if err := fn(tx); err != nil {
		return err
	}

	for key := range tx.removed {
		delete(s.data, key)
	}
	for key, value := range tx.writes {
		s.data[key] = value
	}
	return nil
}

func (s *Store) View(ctx context.Context, fn func(tx storage.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return storage.ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(&memTx{base: s.data, readOnly: true})
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Len reports the number of committed keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

type memTx struct {
	base     map[string][]byte
	writes   map[string][]byte
	removed  map[string]bool
	readOnly bool
}

func (t *memTx) Get(_ context.Context, key string) ([]byte, bool, error) {
	if !t.readOnly {
		if value, ok := t.writes[key]; ok {
			return clone(value), true, nil
		}
		if t.removed[key] {
			return nil, false, nil
		}
	}
	value, ok := t.base[key]
	if !ok {
		return nil, false, nil
	}
	return clone(value), true, nil
}

func (t *memTx) Set(_ context.Context, key string, value []byte) error {
	if t.readOnly {
		return errReadOnly
	}
	delete(t.removed, key)
	t.writes[key] = clone(value)
	return nil
}

func (t *memTx) Remove(_ context.Context, key string) error {
	if t.readOnly {
		return errReadOnly
	}
	delete(t.writes, key)
	t.removed[key] = true
	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
