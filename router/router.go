// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/voting-org/cliparse"
	"github.com/danielhkuo/voting-org/election"
	"github.com/danielhkuo/voting-org/handlers"
	"github.com/danielhkuo/voting-org/middleware"
)

func NewRouter(e *election.Election, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(e, cfg)
	registrationHandler := handlers.NewRegistrationHandler(e, cfg)
	votingHandler := handlers.NewVotingHandler(e, cfg)
	resultsHandler := handlers.NewResultsHandler(e, cfg)

	logged := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(cfg.CallerKeySalt, h)
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Election administration (owner operations require X-Caller-Address and X-Caller-Key)
	mux.HandleFunc("POST /election/init", logged(adminHandler.Init))
	mux.HandleFunc("POST /election/period", logged(adminHandler.SetVotingPeriod))
	mux.HandleFunc("POST /election/owner", logged(adminHandler.ChangeOwner))
	mux.HandleFunc("POST /election/reset", logged(adminHandler.Reset))
	mux.HandleFunc("GET /election/owner", logged(adminHandler.GetOwner))
	mux.HandleFunc("POST /voters/{address}/approve", logged(adminHandler.ApproveVoter))
	mux.HandleFunc("POST /voters/{address}/reject", logged(adminHandler.RejectVoter))
	mux.HandleFunc("POST /candidates/{address}/approve", logged(adminHandler.ApproveCandidate))
	mux.HandleFunc("POST /candidates/{address}/reject", logged(adminHandler.RejectCandidate))

	// Registration (public)
	mux.HandleFunc("POST /voters", logged(registrationHandler.RegisterVoter))
	mux.HandleFunc("POST /candidates", logged(registrationHandler.RegisterCandidate))
	mux.HandleFunc("PUT /voters/{address}", logged(registrationHandler.UpdateVoter))
	mux.HandleFunc("PUT /candidates/{address}", logged(registrationHandler.UpdateCandidate))
	mux.HandleFunc("GET /voters", logged(registrationHandler.ListVoters))
	mux.HandleFunc("GET /voters/approved", logged(registrationHandler.ListApprovedVoters))
	mux.HandleFunc("GET /voters/voted", logged(registrationHandler.ListVotedVoters))
	mux.HandleFunc("GET /voters/{address}", logged(registrationHandler.GetVoter))
	mux.HandleFunc("GET /candidates", logged(registrationHandler.ListCandidates))
	mux.HandleFunc("GET /candidates/approved", logged(registrationHandler.ListApprovedCandidates))
	mux.HandleFunc("GET /candidates/{address}", logged(registrationHandler.GetCandidate))

	// Voting
	mux.HandleFunc("POST /votes", logged(votingHandler.Vote))
	mux.HandleFunc("GET /election/period", logged(votingHandler.GetPeriod))

	// Results
	mux.HandleFunc("GET /election/status", logged(resultsHandler.GetStatus))
	mux.HandleFunc("GET /election/winner", logged(resultsHandler.GetWinner))
	mux.HandleFunc("GET /election/summary", logged(resultsHandler.GetSummary))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("voting-org API v1"))
	})

	return mux
}
