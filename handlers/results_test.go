// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/voting-org/models"
	"github.com/danielhkuo/voting-org/testutil"
)

func TestGetStatus(t *testing.T) {
	cfg := testutil.GetTestConfig()
	e, clock := testutil.SetupTestElection(t, cfg)
	handler := NewResultsHandler(e, cfg)
	ctx := context.Background()

	testutil.CreateApprovedCandidate(t, e, "GBOB")
	testutil.CreateApprovedCandidate(t, e, "GCAROL")
	testutil.CreateApprovedVoter(t, e, "GALICE")
	testutil.CreateApprovedVoter(t, e, "GDAVE")

	// No votes yet, nobody leads but the query still answers
	w := httptest.NewRecorder()
	handler.GetStatus(w, testutil.MakeRequest("GET", "/election/status", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var empty models.LeaderResponse
	testutil.AssertJSON(t, w, &empty)
	if empty.Found || empty.Candidate != nil {
		t.Errorf("Expected no leader, got %+v", empty)
	}

	testutil.OpenVotingWindow(t, e, clock)
	if err := e.Vote(ctx, "GCAROL", "GALICE"); err != nil {
		t.Fatalf("Failed to vote: %v", err)
	}
	if err := e.Vote(ctx, "GBOB", "GDAVE"); err != nil {
		t.Fatalf("Failed to vote: %v", err)
	}

	// Tie goes to the earliest registered
	w = httptest.NewRecorder()
	handler.GetStatus(w, testutil.MakeRequest("GET", "/election/status", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LeaderResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Found || resp.Candidate == nil {
		t.Fatalf("Expected a leader, got %+v", resp)
	}
	if resp.Candidate.Address != "GBOB" {
		t.Errorf("Expected GBOB to lead on a tie, got %s", resp.Candidate.Address)
	}
	if resp.Candidate.VoteCount.Uint64() != 1 {
		t.Errorf("Expected 1 vote, got %s", resp.Candidate.VoteCount.Dec())
	}
}

func TestGetWinner(t *testing.T) {
	cfg := testutil.GetTestConfig()
	e, clock := testutil.SetupTestElection(t, cfg)
	handler := NewResultsHandler(e, cfg)

	testutil.CreateApprovedCandidate(t, e, "GBOB")
	testutil.CreateApprovedVoter(t, e, "GALICE")
	testutil.OpenVotingWindow(t, e, clock)
	if err := e.Vote(context.Background(), "GBOB", "GALICE"); err != nil {
		t.Fatalf("Failed to vote: %v", err)
	}

	tests := []struct {
		name           string
		now            int64
		expectedStatus int
	}{
		{"during voting", 150, http.StatusConflict},
		{"at end time", 200, http.StatusConflict},
		{"after end time", 201, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.Set(tt.now)
			w := httptest.NewRecorder()
			handler.GetWinner(w, testutil.MakeRequest("GET", "/election/winner", nil, nil))
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.LeaderResponse
				testutil.AssertJSON(t, w, &resp)
				if !resp.Found || resp.Candidate == nil || resp.Candidate.Address != "GBOB" {
					t.Errorf("Expected winner GBOB, got %+v", resp)
				}
			}
		})
	}
}

func TestGetWinnerWithoutVotes(t *testing.T) {
	cfg := testutil.GetTestConfig()
	e, clock := testutil.SetupTestElection(t, cfg)
	handler := NewResultsHandler(e, cfg)

	testutil.CreateApprovedCandidate(t, e, "GBOB")
	testutil.OpenVotingWindow(t, e, clock)
	clock.Set(201)

	w := httptest.NewRecorder()
	handler.GetWinner(w, testutil.MakeRequest("GET", "/election/winner", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LeaderResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Found {
		t.Errorf("Expected no winner without votes, got %+v", resp)
	}
}

func TestGetSummary(t *testing.T) {
	cfg := testutil.GetTestConfig()
	e, clock := testutil.SetupTestElection(t, cfg)
	handler := NewResultsHandler(e, cfg)
	ctx := context.Background()

	testutil.CreateApprovedCandidate(t, e, "GBOB")
	testutil.CreateApprovedCandidate(t, e, "GCAROL")
	testutil.CreateApprovedVoter(t, e, "GALICE")
	testutil.CreateApprovedVoter(t, e, "GDAVE")
	if _, err := e.RegisterVoter(ctx, "Pending", "", "GPENDING"); err != nil {
		t.Fatalf("Failed to register voter: %v", err)
	}
	testutil.OpenVotingWindow(t, e, clock)
	for _, voter := range []models.Address{"GALICE", "GDAVE"} {
		if err := e.Vote(ctx, "GCAROL", voter); err != nil {
			t.Fatalf("Failed to vote: %v", err)
		}
	}

	w := httptest.NewRecorder()
	handler.GetSummary(w, testutil.MakeRequest("GET", "/election/summary", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var summary models.Summary
	testutil.AssertJSON(t, w, &summary)

	if len(summary.Tallies) != 2 {
		t.Fatalf("Expected 2 tallies, got %d", len(summary.Tallies))
	}
	if summary.Tallies[0].Address != "GBOB" || summary.Tallies[0].VoteCount.Uint64() != 0 {
		t.Errorf("Unexpected first tally: %+v", summary.Tallies[0])
	}
	if summary.Tallies[1].Address != "GCAROL" || summary.Tallies[1].VoteCount.Uint64() != 2 {
		t.Errorf("Unexpected second tally: %+v", summary.Tallies[1])
	}
	if summary.TotalVotes.Uint64() != 2 {
		t.Errorf("Expected 2 total votes, got %s", summary.TotalVotes.Dec())
	}
	if summary.RegisteredVoters != 3 || summary.ApprovedVoters != 2 {
		t.Errorf("Expected 3 registered and 2 approved voters, got %d and %d",
			summary.RegisteredVoters, summary.ApprovedVoters)
	}
}
