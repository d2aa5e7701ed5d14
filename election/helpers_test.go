// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/voting-org/models"
	"github.com/danielhkuo/voting-org/storage/mem"
)

const (
	owner    models.Address = "GOWNER"
	stranger models.Address = "GSTRANGER"
	alice    models.Address = "GALICE"
	bob      models.Address = "GBOB"
	carol    models.Address = "GCAROL"
	dave     models.Address = "GDAVE"
)

// testClock is a settable clock in unix seconds.
type testClock struct {
	mu  sync.Mutex
	sec int64
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Unix(c.sec, 0)
}

func (c *testClock) Set(sec int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sec = sec
}

func newTestElection(t *testing.T, rules Rules) (*Election, *testClock) {
	t.Helper()
	clock := &testClock{}
	e := New(mem.NewMemStore(), Options{
		Rules:  rules,
		Clock:  clock,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, e.Init(context.Background(), owner))
	return e, clock
}

// approvedVoter registers and approves a voter.
func approvedVoter(t *testing.T, e *Election, addr models.Address) {
	t.Helper()
	ctx := context.Background()
	_, err := e.RegisterVoter(ctx, string(addr), "ipfs-"+string(addr), addr)
	require.NoError(t, err)
	require.NoError(t, e.ApproveVoter(ctx, owner, addr, "approved"))
}

func approvedCandidate(t *testing.T, e *Election, addr models.Address) {
	t.Helper()
	ctx := context.Background()
	_, err := e.RegisterCandidate(ctx, string(addr), "ipfs-"+string(addr), addr)
	require.NoError(t, err)
	require.NoError(t, e.ApproveCandidate(ctx, owner, addr, "approved"))
}

// openWindow sets the period to [5, 10] and moves the clock to 7.
func openWindow(t *testing.T, e *Election, clock *testClock) {
	t.Helper()
	require.NoError(t, e.SetVotingPeriod(context.Background(), owner, 5, 10))
	clock.Set(7)
}
