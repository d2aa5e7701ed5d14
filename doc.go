// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the voting-org API server.

voting-org runs a single election: voters and candidates register, the owner
approves them, approved voters cast one vote each inside the voting window,
and the server reports the leader, the winner and a tally summary.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	CALLER_KEY_SALT=... go run .

Or with flags:

	go run . -p 3318 -t sqlite -d file:voting.db --caller-salt ...

A .env file in the working directory is loaded first; real environment
variables win over it.

# Caller Keys

Owner operations are authenticated with a per-address key. Print the key for
an address and exit:

	go run . --caller-salt ... --key-for GOWNER

# Configuration

Required settings:

  - CALLER_KEY_SALT (--caller-salt): Secret for caller key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default), postgres or memory
  - DATABASE_URL (-d): Connection string (default: file:voting.db for sqlite)
  - STRICT_REJECT (--strict-reject): Reject sets status Rejected
  - RECORD_VOTED_VOTERS (--record-voted): Persist the list of voters who voted
  - SINGLE_INIT (--single-init): Refuse a second init

# Architecture

  - election: Registration, approval, voting and tally rules
  - storage: Transactional key/value interface, storage/mem in-memory backend
  - db: SQL backend (sqlite, postgres) for storage
  - handlers: HTTP request handlers (admin, registration, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, caller identity, JSON helpers
  - models: Domain, request and response types
  - auth: Caller key generation and validation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
