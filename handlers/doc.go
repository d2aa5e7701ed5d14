// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the voting-org API.

# Handler Types

Each handler is a struct with election and config dependencies:

  - AdminHandler: Owner operations (init, approve, reject, period, owner, reset)
  - RegistrationHandler: Voter and candidate registration, profiles and lists
  - VotingHandler: Vote casting and the voting window
  - ResultsHandler: Current leader, winner and tally summary

Handlers are created via constructor functions that accept *election.Election and Config:

	adminHandler := handlers.NewAdminHandler(e, cfg)

# Caller Identity

Owner operations read X-Caller-Address and X-Caller-Key. The key is the
HMAC of the address under the configured salt; a missing or wrong key is 401.
An authenticated caller who is not the owner gets 403.

# Error Mapping

Election errors map to statuses with errors.Is:

	ErrUnauthorized                                   → 403
	ErrNotFound                                       → 404
	ErrInvalidPeriod                                  → 400
	ErrAlreadyVoted, ErrNotApproved, ErrVotingNotActive,
	ErrVotingStillActive, ErrAlreadyInitialized        → 409

Anything else is a storage failure, logged and reported as 500.
*/
package handlers
