// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

// Election errors. Every one aborts the operation with no partial effect.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyVoted       = errors.New("already voted")
	ErrNotApproved        = errors.New("not approved")
	ErrVotingNotActive    = errors.New("voting is not active")
	ErrVotingStillActive  = errors.New("voting is still active")
	ErrInvalidPeriod      = errors.New("start time must be before end time")
	ErrAlreadyInitialized = errors.New("election already initialized")
)

var domainErrors = []error{
	ErrUnauthorized,
	ErrNotFound,
	ErrAlreadyVoted,
	ErrNotApproved,
	ErrVotingNotActive,
	ErrVotingStillActive,
	ErrInvalidPeriod,
	ErrAlreadyInitialized,
}

// IsDomainError reports whether err is a refused precondition rather than a
// storage or encoding failure.
func IsDomainError(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
