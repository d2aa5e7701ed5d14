// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/voting-org/models"
	"github.com/danielhkuo/voting-org/storage"
	"github.com/danielhkuo/voting-org/storage/mem"
)

func withState(t *testing.T, s storage.Store, fn func(st *state)) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.Update(ctx, func(tx storage.Tx) error {
		fn(newState(ctx, tx))
		return nil
	}))
}

func TestNextIDStartsAtOneAndAdvances(t *testing.T) {
	s := mem.NewMemStore()

	withState(t, s, func(st *state) {
		for want := uint64(1); want <= 3; want++ {
			id, err := st.nextID(KindVoter)
			require.NoError(t, err)
			assert.Equal(t, want, id.Uint64())
		}

		// Candidate counter is independent
		id, err := st.nextID(KindCandidate)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id.Uint64())
	})

	withState(t, s, func(st *state) {
		id, err := st.counter(KindVoter)
		require.NoError(t, err)
		assert.Equal(t, uint64(4), id.Uint64(), "counter must persist across transactions")
	})
}

func TestListsAppendWithoutDedup(t *testing.T) {
	s := mem.NewMemStore()

	withState(t, s, func(st *state) {
		empty, err := st.all(listApprovedVoters)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		require.NoError(t, st.appendTo(listRegisteredVoters, alice))
		require.NoError(t, st.appendTo(listRegisteredVoters, bob))
		require.NoError(t, st.appendTo(listRegisteredVoters, alice))
	})

	withState(t, s, func(st *state) {
		addrs, err := st.all(listRegisteredVoters)
		require.NoError(t, err)
		assert.Equal(t, []models.Address{alice, bob, alice}, addrs)

		other, err := st.all(listRegisteredCandidates)
		require.NoError(t, err)
		assert.Empty(t, other)

		require.NoError(t, st.clear(listRegisteredVoters))
		addrs, err = st.all(listRegisteredVoters)
		require.NoError(t, err)
		assert.Empty(t, addrs)
	})
}

func TestEntityStoreRoundTrip(t *testing.T) {
	s := mem.NewMemStore()

	withState(t, s, func(st *state) {
		_, found, err := st.voter(alice)
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, st.putVoter(models.Voter{Address: alice, Name: "Alice", Status: models.StatusPending}))
		v, found, err := st.voter(alice)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Alice", v.Name)

		// Voter and candidate keys do not collide
		_, found, err = st.candidate(alice)
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, st.removeVoter(alice))
		_, found, err = st.voter(alice)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestResolveSkipsMissingRecords(t *testing.T) {
	s := mem.NewMemStore()

	withState(t, s, func(st *state) {
		require.NoError(t, st.putCandidate(models.Candidate{Address: bob, Name: "Bob"}))
		cands, err := st.resolveCandidates([]models.Address{alice, bob, carol})
		require.NoError(t, err)
		require.Len(t, cands, 1)
		assert.Equal(t, bob, cands[0].Address)
	})
}

func TestRequireOwnerWithoutOwner(t *testing.T) {
	s := mem.NewMemStore()

	withState(t, s, func(st *state) {
		// Nobody, not even the empty address, passes an unset owner
		assert.ErrorIs(t, st.requireOwner(""), ErrUnauthorized)
		assert.ErrorIs(t, st.requireOwner(owner), ErrUnauthorized)
	})
}

func TestPeriodGate(t *testing.T) {
	s := mem.NewMemStore()

	withState(t, s, func(st *state) {
		start, end, err := st.window()
		require.NoError(t, err)
		assert.Zero(t, start)
		assert.Zero(t, end)

		active, err := st.isActive(7)
		require.NoError(t, err)
		assert.False(t, active, "default window is closed")

		require.NoError(t, st.setJSON(keyOwner, owner))
		require.NoError(t, st.setPeriod(owner, 5, 10))

		for now, want := range map[uint64]bool{4: false, 5: true, 7: true, 10: true, 11: false} {
			active, err := st.isActive(now)
			require.NoError(t, err)
			assert.Equal(t, want, active, "now=%d", now)
		}
	})
}
