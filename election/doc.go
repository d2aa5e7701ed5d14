// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the single-election voting registry.

# Lifecycle

Registrants enter as Pending voters or candidates. The owner approves or
rejects them; approved voters cast exactly one vote for an approved candidate
inside the voting window; the leader and, after the window closes, the winner
are read from the tallies.

	e := election.New(store, election.Options{})
	_ = e.Init(ctx, owner)
	_, _ = e.RegisterVoter(ctx, "Ada", "ipfs://ada", voter)
	_ = e.ApproveVoter(ctx, owner, voter, "welcome")
	_ = e.SetVotingPeriod(ctx, owner, start, end)
	_ = e.Vote(ctx, candidate, voter)

# State

Everything lives in the storage.Store under fixed keys (Owner, the five
registry lists, the two id counters, StartTime, EndTime) and per-address
Voter/<address> and Candidate/<address> records. Each operation is one
Store.Update, so a failed precondition leaves no trace.

# Rules

The zero Rules value reproduces the legacy election: reject leaves the status
Approved, the VotedVoters list is never written, and init may be repeated.
StrictReject, RecordVotedVoters and SingleInit switch each of these off.

# Errors

Refused preconditions wrap one of ErrUnauthorized, ErrNotFound,
ErrAlreadyVoted, ErrNotApproved, ErrVotingNotActive, ErrVotingStillActive,
ErrInvalidPeriod or ErrAlreadyInitialized. Queries never fail on a missing
record; they report found=false or an empty slice instead.
*/
package election
