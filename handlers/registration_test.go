// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/voting-org/models"
	"github.com/danielhkuo/voting-org/testutil"
)

func TestRegisterVoter(t *testing.T) {
	cfg := testutil.GetTestConfig()
	e, _ := testutil.SetupTestElection(t, cfg)
	handler := NewRegistrationHandler(e, cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.RegisterResponse)
	}{
		{
			name: "first voter",
			requestBody: models.RegisterRequest{
				Name:    "Alice",
				IPFS:    "ipfs://alice",
				Address: "GALICE",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.RegisterResponse) {
				if resp.RegisterID == nil || resp.RegisterID.Uint64() != 1 {
					t.Errorf("Expected register_id 1, got %v", resp.RegisterID)
				}
				if resp.Status != models.StatusPending {
					t.Errorf("Expected status Pending, got %s", resp.Status)
				}
				if resp.Message != models.PendingMessage {
					t.Errorf("Expected pending message, got '%s'", resp.Message)
				}
			},
		},
		{
			name: "second voter gets next id",
			requestBody: models.RegisterRequest{
				Name:    "Carol",
				Address: "GCAROL",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.RegisterResponse) {
				if resp.RegisterID.Uint64() != 2 {
					t.Errorf("Expected register_id 2, got %s", resp.RegisterID.Dec())
				}
			},
		},
		{
			name:           "missing address",
			requestBody:    models.RegisterRequest{Name: "Nobody"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/voters", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.RegisterVoter(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil && w.Code == tt.expectedStatus {
				var resp models.RegisterResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/voters", bytes.NewReader([]byte("{invalid")))
		w := httptest.NewRecorder()
		handler.RegisterVoter(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestRegisterCandidateCounterIsSeparate(t *testing.T) {
	cfg := testutil.GetTestConfig()
	e, _ := testutil.SetupTestElection(t, cfg)
	handler := NewRegistrationHandler(e, cfg)

	for _, addr := range []models.Address{"GV1", "GV2"} {
		if _, err := e.RegisterVoter(context.Background(), "v", "", addr); err != nil {
			t.Fatalf("Failed to register voter: %v", err)
		}
	}

	req := testutil.MakeRequest("POST", "/candidates", models.RegisterRequest{Name: "Bob", Address: "GBOB"}, nil)
	w := httptest.NewRecorder()
	handler.RegisterCandidate(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.RegisterResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.RegisterID.Uint64() != 1 {
		t.Errorf("Expected first candidate id 1, got %s", resp.RegisterID.Dec())
	}
}

func TestGetVoter(t *testing.T) {
	cfg := testutil.GetTestConfig()
	e, _ := testutil.SetupTestElection(t, cfg)
	handler := NewRegistrationHandler(e, cfg)

	if _, err := e.RegisterVoter(context.Background(), "Alice", "ipfs://alice", "GALICE"); err != nil {
		t.Fatalf("Failed to register voter: %v", err)
	}

	t.Run("registered voter", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/voters/GALICE", nil, nil)
		req.SetPathValue("address", "GALICE")
		w := httptest.NewRecorder()
		handler.GetVoter(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var voter models.Voter
		testutil.AssertJSON(t, w, &voter)
		if voter.Name != "Alice" || voter.IPFS != "ipfs://alice" {
			t.Errorf("Unexpected profile: %+v", voter)
		}
		if voter.Status != models.StatusPending || voter.HasVoted {
			t.Errorf("Expected pending voter that has not voted, got %+v", voter)
		}
	})

	t.Run("unknown voter", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/voters/GNOBODY", nil, nil)
		req.SetPathValue("address", "GNOBODY")
		w := httptest.NewRecorder()
		handler.GetVoter(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestUpdateCandidate(t *testing.T) {
	cfg := testutil.GetTestConfig()
	e, _ := testutil.SetupTestElection(t, cfg)
	handler := NewRegistrationHandler(e, cfg)

	testutil.CreateApprovedCandidate(t, e, "GBOB")

	tests := []struct {
		name           string
		address        string
		expectedStatus int
	}{
		{"existing candidate", "GBOB", http.StatusOK},
		{"unknown candidate", "GNOBODY", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("PUT", "/candidates/"+tt.address,
				models.UpdateProfileRequest{Name: "Robert", IPFS: "ipfs://robert"}, nil)
			req.SetPathValue("address", tt.address)
			w := httptest.NewRecorder()

			handler.UpdateCandidate(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	candidate, _, err := e.Candidate(context.Background(), "GBOB")
	if err != nil {
		t.Fatalf("Failed to load candidate: %v", err)
	}
	if candidate.Name != "Robert" || candidate.IPFS != "ipfs://robert" {
		t.Errorf("Expected updated profile, got %+v", candidate)
	}
	if candidate.Status != models.StatusApproved {
		t.Errorf("Update must not touch status, got %s", candidate.Status)
	}
}

func TestListEndpoints(t *testing.T) {
	cfg := testutil.GetTestConfig()
	e, _ := testutil.SetupTestElection(t, cfg)
	handler := NewRegistrationHandler(e, cfg)
	ctx := context.Background()

	testutil.CreateApprovedVoter(t, e, "GALICE")
	if _, err := e.RegisterVoter(ctx, "Pending", "", "GPENDING"); err != nil {
		t.Fatalf("Failed to register voter: %v", err)
	}
	testutil.CreateApprovedCandidate(t, e, "GBOB")

	t.Run("all voters", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListVoters(w, testutil.MakeRequest("GET", "/voters", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var voters []models.Voter
		testutil.AssertJSON(t, w, &voters)
		if len(voters) != 2 {
			t.Errorf("Expected 2 voters, got %d", len(voters))
		}
	})

	t.Run("approved voters", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListApprovedVoters(w, testutil.MakeRequest("GET", "/voters/approved", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var voters []models.Voter
		testutil.AssertJSON(t, w, &voters)
		if len(voters) != 1 || voters[0].Address != "GALICE" {
			t.Errorf("Expected only GALICE, got %+v", voters)
		}
	})

	t.Run("voted voters empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListVotedVoters(w, testutil.MakeRequest("GET", "/voters/voted", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.VotedVotersResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.Voters) != 0 {
			t.Errorf("Expected no voted voters, got %v", resp.Voters)
		}
	})

	t.Run("candidates", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListCandidates(w, testutil.MakeRequest("GET", "/candidates", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var candidates []models.Candidate
		testutil.AssertJSON(t, w, &candidates)
		if len(candidates) != 1 {
			t.Errorf("Expected 1 candidate, got %d", len(candidates))
		}

		w = httptest.NewRecorder()
		handler.ListApprovedCandidates(w, testutil.MakeRequest("GET", "/candidates/approved", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	})
}
