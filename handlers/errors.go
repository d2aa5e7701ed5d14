// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/voting-org/auth"
	"github.com/danielhkuo/voting-org/election"
	"github.com/danielhkuo/voting-org/middleware"
	"github.com/danielhkuo/voting-org/models"
)

// statusFor maps an election or auth error to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrMissingCaller), errors.Is(err, auth.ErrInvalidCallerKey):
		return http.StatusUnauthorized
	case errors.Is(err, election.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, election.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, election.ErrInvalidPeriod):
		return http.StatusBadRequest
	case errors.Is(err, election.ErrAlreadyVoted),
		errors.Is(err, election.ErrNotApproved),
		errors.Is(err, election.ErrVotingNotActive),
		errors.Is(err, election.ErrVotingStillActive),
		errors.Is(err, election.ErrAlreadyInitialized):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as a JSON error. Storage failures are logged and
// reported without detail.
func writeError(w http.ResponseWriter, err error, op string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("election operation failed", "op", op, "error", err)
		middleware.ErrorResponse(w, status, "Storage error")
		return
	}
	middleware.ErrorResponse(w, status, err.Error())
}

// caller authenticates the request or writes a 401 and returns false
func caller(w http.ResponseWriter, r *http.Request, salt string) (models.Address, bool) {
	addr, err := middleware.Caller(r, salt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return "", false
	}
	return addr, true
}

// pathAddress reads the {address} path segment or writes a 400
func pathAddress(w http.ResponseWriter, r *http.Request) (models.Address, bool) {
	addr := r.PathValue("address")
	if addr == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "address is required")
		return "", false
	}
	return models.Address(addr), true
}
