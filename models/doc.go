// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Voter: registrant eligible to vote once approved
  - Candidate: registrant eligible to receive votes once approved
  - Tally: one candidate's vote count in a summary

Registration ids and vote counts are unsigned 256-bit integers
(github.com/holiman/uint256) and encode as decimal JSON strings.

# Request Types

  - InitRequest: owner
  - RegisterRequest: name, ipfs, address
  - UpdateProfileRequest: name, ipfs
  - DecisionRequest: message (approve and reject)
  - SetVotingPeriodRequest: start_time, end_time (unix seconds)
  - ChangeOwnerRequest: new_owner
  - VoteRequest: candidate_address, voter_address

# Response Types

  - RegisterResponse, VotingPeriodResponse, OwnerResponse,
    VotedVotersResponse, Summary, MessageResponse
  - ErrorResponse: error, message

# Constants

Status values:

	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
*/
package models
