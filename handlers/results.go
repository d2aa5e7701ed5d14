// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/voting-org/cliparse"
	"github.com/danielhkuo/voting-org/election"
	"github.com/danielhkuo/voting-org/middleware"
	"github.com/danielhkuo/voting-org/models"
)

type ResultsHandler struct {
	election *election.Election
	cfg      cliparse.Config
}

func NewResultsHandler(e *election.Election, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{election: e, cfg: cfg}
}

// GetStatus handles GET /election/status
// Returns the current leader; found is false until some candidate has a vote.
func (h *ResultsHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	leader, found, err := h.election.CurrentLeader(r.Context())
	if err != nil {
		writeError(w, err, "current leader")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, leaderResponse(leader, found))
}

// GetWinner handles GET /election/winner
// Only answers once the voting period has ended.
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	winner, found, err := h.election.Winner(r.Context())
	if err != nil {
		writeError(w, err, "winner")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, leaderResponse(winner, found))
}

func leaderResponse(c models.Candidate, found bool) models.LeaderResponse {
	if !found {
		return models.LeaderResponse{}
	}
	return models.LeaderResponse{Found: true, Candidate: &c}
}

// GetSummary handles GET /election/summary
func (h *ResultsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.election.Summary(r.Context())
	if err != nil {
		writeError(w, err, "summary")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}
