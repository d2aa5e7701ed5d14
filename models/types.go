// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/holiman/uint256"

// Address identifies a voter, candidate or the owner. Comparison is byte-for-byte.
type Address string

// Registration status
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// PendingMessage is stored on every fresh registration
const PendingMessage = "Currently your registration is pending"

// Domain types

type Voter struct {
	Address    Address      `json:"voter_address"`
	Name       string       `json:"name"`
	IPFS       string       `json:"ipfs"`
	RegisterID *uint256.Int `json:"register_id"`
	Status     Status       `json:"status"`
	HasVoted   bool         `json:"has_voted"`
	Message    string       `json:"message"`
}

type Candidate struct {
	Address    Address      `json:"candidate_address"`
	Name       string       `json:"name"`
	IPFS       string       `json:"ipfs"`
	RegisterID *uint256.Int `json:"register_id"`
	Status     Status       `json:"status"`
	VoteCount  *uint256.Int `json:"vote_count"`
	Message    string       `json:"message"`
}

// Request types

type InitRequest struct {
	Owner Address `json:"owner"`
}

type RegisterRequest struct {
	Name    string  `json:"name"`
	IPFS    string  `json:"ipfs"`
	Address Address `json:"address"`
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
	IPFS string `json:"ipfs"`
}

type DecisionRequest struct {
	Message string `json:"message"`
}

type SetVotingPeriodRequest struct {
	StartTime uint64 `json:"start_time"`
	EndTime   uint64 `json:"end_time"`
}

type ChangeOwnerRequest struct {
	NewOwner Address `json:"new_owner"`
}

type VoteRequest struct {
	CandidateAddress Address `json:"candidate_address"`
	VoterAddress     Address `json:"voter_address"`
}

// Response types

type RegisterResponse struct {
	Address    Address      `json:"address"`
	RegisterID *uint256.Int `json:"register_id"`
	Status     Status       `json:"status"`
	Message    string       `json:"message"`
}

type VotingPeriodResponse struct {
	StartTime uint64 `json:"start_time"`
	EndTime   uint64 `json:"end_time"`
	Active    bool   `json:"active"`
	StartsIn  string `json:"starts,omitempty"` // humanized, omitted while unset
	EndsIn    string `json:"ends,omitempty"`
}

// LeaderResponse answers the leader and winner queries. Found is false while
// no candidate has a vote.
type LeaderResponse struct {
	Found     bool       `json:"found"`
	Candidate *Candidate `json:"candidate,omitempty"`
}

type OwnerResponse struct {
	Owner      Address `json:"owner"`
	Configured bool    `json:"configured"`
}

type VotedVotersResponse struct {
	Voters []Address `json:"voters"`
}

// Tally is one row of the election summary
type Tally struct {
	Address   Address      `json:"candidate_address"`
	Name      string       `json:"name"`
	Status    Status       `json:"status"`
	VoteCount *uint256.Int `json:"vote_count"`
}

type Summary struct {
	Tallies          []Tally      `json:"tallies"`
	TotalVotes       *uint256.Int `json:"total_votes"`
	RegisteredVoters int          `json:"registered_voters"`
	ApprovedVoters   int          `json:"approved_voters"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
