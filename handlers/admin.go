// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"

	"github.com/danielhkuo/voting-org/cliparse"
	"github.com/danielhkuo/voting-org/election"
	"github.com/danielhkuo/voting-org/middleware"
	"github.com/danielhkuo/voting-org/models"
)

type AdminHandler struct {
	election *election.Election
	cfg      cliparse.Config
}

func NewAdminHandler(e *election.Election, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{election: e, cfg: cfg}
}

// Init handles POST /election/init
func (h *AdminHandler) Init(w http.ResponseWriter, r *http.Request) {
	var req models.InitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Owner == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "owner is required")
		return
	}

	if err := h.election.Init(r.Context(), req.Owner); err != nil {
		writeError(w, err, "init")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OwnerResponse{
		Owner:      req.Owner,
		Configured: true,
	})
}

type decideFunc func(ctx context.Context, caller, addr models.Address, message string) error

// decide runs one approve or reject call for the {address} in the path
func (h *AdminHandler) decide(w http.ResponseWriter, r *http.Request, fn decideFunc, op, done string) {
	owner, ok := caller(w, r, h.cfg.CallerKeySalt)
	if !ok {
		return
	}
	addr, ok := pathAddress(w, r)
	if !ok {
		return
	}

	var req models.DecisionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := fn(r.Context(), owner, addr, req.Message); err != nil {
		writeError(w, err, op)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: done})
}

// ApproveVoter handles POST /voters/{address}/approve
func (h *AdminHandler) ApproveVoter(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.election.ApproveVoter, "approve voter", "voter approved")
}

// RejectVoter handles POST /voters/{address}/reject
func (h *AdminHandler) RejectVoter(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.election.RejectVoter, "reject voter", "voter rejected")
}

// ApproveCandidate handles POST /candidates/{address}/approve
func (h *AdminHandler) ApproveCandidate(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.election.ApproveCandidate, "approve candidate", "candidate approved")
}

// RejectCandidate handles POST /candidates/{address}/reject
func (h *AdminHandler) RejectCandidate(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.election.RejectCandidate, "reject candidate", "candidate rejected")
}

// SetVotingPeriod handles POST /election/period
func (h *AdminHandler) SetVotingPeriod(w http.ResponseWriter, r *http.Request) {
	owner, ok := caller(w, r, h.cfg.CallerKeySalt)
	if !ok {
		return
	}

	var req models.SetVotingPeriodRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.election.SetVotingPeriod(r.Context(), owner, req.StartTime, req.EndTime); err != nil {
		writeError(w, err, "set voting period")
		return
	}

	active, err := h.election.IsActive(r.Context())
	if err != nil {
		writeError(w, err, "voting status")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, periodResponse(h.election.Now(), req.StartTime, req.EndTime, active))
}

// ChangeOwner handles POST /election/owner
func (h *AdminHandler) ChangeOwner(w http.ResponseWriter, r *http.Request) {
	owner, ok := caller(w, r, h.cfg.CallerKeySalt)
	if !ok {
		return
	}

	var req models.ChangeOwnerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.election.ChangeOwner(r.Context(), owner, req.NewOwner); err != nil {
		writeError(w, err, "change owner")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OwnerResponse{
		Owner:      req.NewOwner,
		Configured: true,
	})
}

// Reset handles POST /election/reset
// Clears every registration, list, counter and the voting period. The owner stays.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	owner, ok := caller(w, r, h.cfg.CallerKeySalt)
	if !ok {
		return
	}

	if err := h.election.Reset(r.Context(), owner); err != nil {
		writeError(w, err, "reset")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "election reset"})
}

// GetOwner handles GET /election/owner
func (h *AdminHandler) GetOwner(w http.ResponseWriter, r *http.Request) {
	owner, configured, err := h.election.Owner(r.Context())
	if err != nil {
		writeError(w, err, "get owner")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OwnerResponse{
		Owner:      owner,
		Configured: configured,
	})
}
