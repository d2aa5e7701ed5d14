// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the voting-org API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(e, cfg)

# Endpoints

Health:

	GET /health

Administration (owner only, requires X-Caller-Address and X-Caller-Key):

	POST /election/period               - Set voting window
	POST /election/owner                - Hand over ownership
	POST /election/reset                - Clear the election
	POST /voters/{address}/approve      - Approve voter
	POST /voters/{address}/reject       - Reject voter
	POST /candidates/{address}/approve  - Approve candidate
	POST /candidates/{address}/reject   - Reject candidate

Setup:

	POST /election/init  - Set owner and counters
	GET  /election/owner - Current owner

Registration (public):

	POST /voters, POST /candidates                     - Register
	PUT  /voters/{address}, PUT /candidates/{address}  - Update profile
	GET  /voters, /voters/approved, /voters/voted      - Voter lists
	GET  /candidates, /candidates/approved             - Candidate lists
	GET  /voters/{address}, /candidates/{address}      - Single record

Voting and results:

	POST /votes             - Cast a vote
	GET  /election/period   - Voting window
	GET  /election/status   - Current leader
	GET  /election/winner   - Winner, after the window ends
	GET  /election/summary  - Tally of every candidate
*/
package router
