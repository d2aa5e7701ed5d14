// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/voting-org/auth"
	"github.com/danielhkuo/voting-org/cliparse"
	"github.com/danielhkuo/voting-org/db"
	"github.com/danielhkuo/voting-org/election"
	"github.com/danielhkuo/voting-org/middleware"
	"github.com/danielhkuo/voting-org/models"
)

// TestOwner is the owner every test election starts with
const TestOwner models.Address = "GOWNER"

// Clock is a settable election clock in unix seconds
type Clock struct {
	mu  sync.Mutex
	sec int64
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Unix(c.sec, 0)
}

func (c *Clock) Set(sec int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sec = sec
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseType:  cliparse.DatabaseSQLite,
		DatabaseURL:   ":memory:",
		CallerKeySalt: "test-caller-salt",
	}
}

// SetupTestElection opens a fresh in-memory sqlite store and initializes an
// election owned by TestOwner. The store is closed when the test ends.
func SetupTestElection(t *testing.T, cfg cliparse.Config) (*election.Election, *Clock) {
	t.Helper()

	conn, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	store := db.NewStore(conn)
	t.Cleanup(func() { store.Close() })

	clock := &Clock{}
	e := election.New(store, election.Options{
		Rules: election.Rules{
			StrictReject:      cfg.StrictReject,
			RecordVotedVoters: cfg.RecordVotedVoters,
			SingleInit:        cfg.SingleInit,
		},
		Clock:  clock,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	if err := e.Init(context.Background(), TestOwner); err != nil {
		t.Fatalf("Failed to init election: %v", err)
	}
	return e, clock
}

// CallerHeaders returns the identity headers for address
func CallerHeaders(address models.Address, cfg cliparse.Config) map[string]string {
	return map[string]string{
		middleware.HeaderCallerAddress: string(address),
		middleware.HeaderCallerKey:     auth.GenerateCallerKey(string(address), cfg.CallerKeySalt),
	}
}

// CreateApprovedVoter registers a voter and approves it as TestOwner
func CreateApprovedVoter(t *testing.T, e *election.Election, address models.Address) {
	t.Helper()
	ctx := context.Background()
	if _, err := e.RegisterVoter(ctx, "Voter "+string(address), "ipfs://"+string(address), address); err != nil {
		t.Fatalf("Failed to register voter: %v", err)
	}
	if err := e.ApproveVoter(ctx, TestOwner, address, "welcome"); err != nil {
		t.Fatalf("Failed to approve voter: %v", err)
	}
}

// CreateApprovedCandidate registers a candidate and approves it as TestOwner
func CreateApprovedCandidate(t *testing.T, e *election.Election, address models.Address) {
	t.Helper()
	ctx := context.Background()
	if _, err := e.RegisterCandidate(ctx, "Candidate "+string(address), "ipfs://"+string(address), address); err != nil {
		t.Fatalf("Failed to register candidate: %v", err)
	}
	if err := e.ApproveCandidate(ctx, TestOwner, address, "welcome"); err != nil {
		t.Fatalf("Failed to approve candidate: %v", err)
	}
}

// OpenVotingWindow sets the period to [100, 200] and moves the clock inside it
func OpenVotingWindow(t *testing.T, e *election.Election, clock *Clock) {
	t.Helper()
	if err := e.SetVotingPeriod(context.Background(), TestOwner, 100, 200); err != nil {
		t.Fatalf("Failed to set voting period: %v", err)
	}
	clock.Set(150)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
