// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first. Variables already set in
the environment are not overwritten by it.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite (default), postgres or memory
  - DatabaseURL: connection string (default file:voting.db for sqlite)
  - CallerKeySalt: Secret for caller key HMAC (required)
  - StrictReject, RecordVotedVoters, SingleInit: election rule switches
  - KeyFor: print a caller key and exit

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	--caller-salt    Caller key salt
	--strict-reject  Reject sets status Rejected
	--record-voted   Persist the voted-voters list
	--single-init    Refuse a second init
	--key-for        Print the caller key for an address

# Environment Variables

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	CALLER_KEY_SALT     → --caller-salt
	STRICT_REJECT       → --strict-reject
	RECORD_VOTED_VOTERS → --record-voted
	SINGLE_INIT         → --single-init

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - CALLER_KEY_SALT is missing
  - DATABASE_TYPE is not one of sqlite, postgres, memory
  - DATABASE_URL is missing for postgres
*/
package cliparse
