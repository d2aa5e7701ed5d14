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

type RegistrationHandler struct {
	election *election.Election
	cfg      cliparse.Config
}

func NewRegistrationHandler(e *election.Election, cfg cliparse.Config) *RegistrationHandler {
	return &RegistrationHandler{election: e, cfg: cfg}
}

// parseRegistration decodes and validates a registration body
func parseRegistration(w http.ResponseWriter, r *http.Request) (models.RegisterRequest, bool) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return req, false
	}
	if req.Address == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "address is required")
		return req, false
	}
	return req, true
}

// RegisterVoter handles POST /voters
func (h *RegistrationHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	req, ok := parseRegistration(w, r)
	if !ok {
		return
	}

	voter, err := h.election.RegisterVoter(r.Context(), req.Name, req.IPFS, req.Address)
	if err != nil {
		writeError(w, err, "register voter")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		Address:    voter.Address,
		RegisterID: voter.RegisterID,
		Status:     voter.Status,
		Message:    voter.Message,
	})
}

// RegisterCandidate handles POST /candidates
func (h *RegistrationHandler) RegisterCandidate(w http.ResponseWriter, r *http.Request) {
	req, ok := parseRegistration(w, r)
	if !ok {
		return
	}

	candidate, err := h.election.RegisterCandidate(r.Context(), req.Name, req.IPFS, req.Address)
	if err != nil {
		writeError(w, err, "register candidate")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		Address:    candidate.Address,
		RegisterID: candidate.RegisterID,
		Status:     candidate.Status,
		Message:    candidate.Message,
	})
}

// UpdateVoter handles PUT /voters/{address}
// Anyone may update a profile; only name and ipfs change.
func (h *RegistrationHandler) UpdateVoter(w http.ResponseWriter, r *http.Request) {
	addr, ok := pathAddress(w, r)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.election.UpdateVoter(r.Context(), req.Name, req.IPFS, addr); err != nil {
		writeError(w, err, "update voter")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "voter updated"})
}

// UpdateCandidate handles PUT /candidates/{address}
func (h *RegistrationHandler) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	addr, ok := pathAddress(w, r)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.election.UpdateCandidate(r.Context(), req.Name, req.IPFS, addr); err != nil {
		writeError(w, err, "update candidate")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "candidate updated"})
}

// GetVoter handles GET /voters/{address}
func (h *RegistrationHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	addr, ok := pathAddress(w, r)
	if !ok {
		return
	}

	voter, found, err := h.election.Voter(r.Context(), addr)
	if err != nil {
		writeError(w, err, "get voter")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voter)
}

// GetCandidate handles GET /candidates/{address}
func (h *RegistrationHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	addr, ok := pathAddress(w, r)
	if !ok {
		return
	}

	candidate, found, err := h.election.Candidate(r.Context(), addr)
	if err != nil {
		writeError(w, err, "get candidate")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidate)
}

// ListVoters handles GET /voters
func (h *RegistrationHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.election.RegisteredVoters(r.Context())
	if err != nil {
		writeError(w, err, "list voters")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, voters)
}

// ListApprovedVoters handles GET /voters/approved
func (h *RegistrationHandler) ListApprovedVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.election.ApprovedVoters(r.Context())
	if err != nil {
		writeError(w, err, "list approved voters")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, voters)
}

// ListVotedVoters handles GET /voters/voted
func (h *RegistrationHandler) ListVotedVoters(w http.ResponseWriter, r *http.Request) {
	voted, err := h.election.VotedVoters(r.Context())
	if err != nil {
		writeError(w, err, "list voted voters")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.VotedVotersResponse{Voters: voted})
}

// ListCandidates handles GET /candidates
func (h *RegistrationHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.election.RegisteredCandidates(r.Context())
	if err != nil {
		writeError(w, err, "list candidates")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// ListApprovedCandidates handles GET /candidates/approved
func (h *RegistrationHandler) ListApprovedCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.election.ApprovedCandidates(r.Context())
	if err != nil {
		writeError(w, err, "list approved candidates")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, candidates)
}
