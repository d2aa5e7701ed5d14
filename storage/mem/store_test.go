// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mem

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/voting-org/storage"
)

func TestStoreUpdateCommits(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	err := s.Update(ctx, func(tx storage.Tx) error {
		return tx.Set(ctx, "Owner", []byte(`"GOWNER"`))
	})
	require.NoError(t, err)

	err = s.View(ctx, func(tx storage.Tx) error {
		v, found, err := tx.Get(ctx, "Owner")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `"GOWNER"`, string(v))
		return nil
	})
	require.NoError(t, err)
}

func TestStoreUpdateRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	require.NoError(t, s.Update(ctx, func(tx storage.Tx) error {
		return tx.Set(ctx, "keep", []byte("1"))
	}))

	boom := errors.New("boom")
	err := s.Update(ctx, func(tx storage.Tx) error {
		require.NoError(t, tx.Set(ctx, "lost", []byte("x")))
		require.NoError(t, tx.Remove(ctx, "keep"))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, s.View(ctx, func(tx storage.Tx) error {
		_, found, _ := tx.Get(ctx, "lost")
		assert.False(t, found, "write from failed update must be discarded")
		_, found, _ = tx.Get(ctx, "keep")
		assert.True(t, found, "remove from failed update must be discarded")
		return nil
	}))
}

func TestTxReadsItsOwnWrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	err := s.Update(ctx, func(tx storage.Tx) error {
		require.NoError(t, tx.Set(ctx, "k", []byte("v1")))
		v, found, err := tx.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "v1", string(v))

		require.NoError(t, tx.Remove(ctx, "k"))
		_, found, err = tx.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, found)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestViewIsReadOnly(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	err := s.View(ctx, func(tx storage.Tx) error {
		return tx.Set(ctx, "k", []byte("v"))
	})
	assert.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestClosedStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	require.NoError(t, s.Close())

	err := s.Update(ctx, func(tx storage.Tx) error { return nil })
	assert.ErrorIs(t, err, storage.ErrClosed)
	err = s.View(ctx, func(tx storage.Tx) error { return nil })
	assert.ErrorIs(t, err, storage.ErrClosed)
}
