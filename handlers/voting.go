// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/voting-org/cliparse"
	"github.com/danielhkuo/voting-org/election"
	"github.com/danielhkuo/voting-org/middleware"
	"github.com/danielhkuo/voting-org/models"
)

type VotingHandler struct {
	election *election.Election
	cfg      cliparse.Config
}

func NewVotingHandler(e *election.Election, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{election: e, cfg: cfg}
}

// Vote handles POST /votes
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.VoterAddress == "" || req.CandidateAddress == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_address and candidate_address are required")
		return
	}

	if err := h.election.Vote(r.Context(), req.CandidateAddress, req.VoterAddress); err != nil {
		writeError(w, err, "vote")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: "vote recorded"})
}

// GetPeriod handles GET /election/period
func (h *VotingHandler) GetPeriod(w http.ResponseWriter, r *http.Request) {
	start, end, err := h.election.VotingWindow(r.Context())
	if err != nil {
		writeError(w, err, "voting window")
		return
	}

	active, err := h.election.IsActive(r.Context())
	if err != nil {
		writeError(w, err, "voting status")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, periodResponse(h.election.Now(), start, end, active))
}

// periodResponse describes a voting window relative to now.
// A window that was never set has no humanized times.
func periodResponse(now time.Time, start, end uint64, active bool) models.VotingPeriodResponse {
	resp := models.VotingPeriodResponse{
		StartTime: start,
		EndTime:   end,
		Active:    active,
	}
	if start == 0 && end == 0 {
		return resp
	}
	resp.StartsIn = humanize.RelTime(unixTime(start), now, "ago", "from now")
	resp.EndsIn = humanize.RelTime(unixTime(end), now, "ago", "from now")
	return resp
}

// unixTime converts stored seconds, capping far-future bounds that time.Time
// cannot represent.
func unixTime(sec uint64) time.Time {
	const maxUnix = 1 << 40
	if sec > maxUnix {
		sec = maxUnix
	}
	return time.Unix(int64(sec), 0)
}
