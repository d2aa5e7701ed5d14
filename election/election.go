// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/holiman/uint256"

	"github.com/danielhkuo/voting-org/models"
	"github.com/danielhkuo/voting-org/storage"
)

// Rules switch between the legacy behavior and the corrected one. The zero
// value reproduces the legacy election exactly.
type Rules struct {
	// StrictReject makes reject set status Rejected instead of Approved.
	StrictReject bool
	// RecordVotedVoters persists each voter that votes to the VotedVoters list.
	RecordVotedVoters bool
	// SingleInit refuses init once an owner is configured.
	SingleInit bool
}

type Options struct {
	Rules  Rules
	Clock  Clock
	Logger *slog.Logger
}

// Election is one election instance over a store.
type Election struct {
	store  storage.Store
	rules  Rules
	clock  Clock
	logger *slog.Logger
}

func New(store storage.Store, opts Options) *Election {
	e := &Election{
		store:  store,
		rules:  opts.Rules,
		clock:  opts.Clock,
		logger: opts.Logger,
	}
	if e.clock == nil {
		e.clock = SystemClock{}
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

func (e *Election) Rules() Rules { return e.rules }

// Now is the election clock's current time.
func (e *Election) Now() time.Time { return e.clock.Now() }

func (e *Election) now() uint64 {
	return unixSeconds(e.clock.Now())
}

// mutate runs fn in one atomic update and logs the outcome under event.
func (e *Election) mutate(ctx context.Context, event string, fn func(st *state) error, attrs ...any) error {
	err := e.store.Update(ctx, func(tx storage.Tx) error {
		return fn(newState(ctx, tx))
	})
	switch {
	case err == nil:
		e.logger.Info(event, attrs...)
	case IsDomainError(err):
		e.logger.Warn(event+" refused", append(attrs, "error", err)...)
	default:
		e.logger.Error(event+" failed", append(attrs, "error", err)...)
	}
	return err
}

func (e *Election) view(ctx context.Context, fn func(st *state) error) error {
	return e.store.View(ctx, func(tx storage.Tx) error {
		return fn(newState(ctx, tx))
	})
}

// Init sets the owner and both id counters to 1.
func (e *Election) Init(ctx context.Context, owner models.Address) error {
	return e.mutate(ctx, "election initialized", func(st *state) error {
		if e.rules.SingleInit {
			_, configured, err := st.owner()
			if err != nil {
				return err
			}
			if configured {
				return ErrAlreadyInitialized
			}
		}
		if err := st.setJSON(keyOwner, owner); err != nil {
			return err
		}
		return st.resetCounters()
	}, "owner", owner)
}

// RegisterVoter stores a Pending voter under addr. Registering an address
// again overwrites its record and appends it to the registry a second time.
func (e *Election) RegisterVoter(ctx context.Context, name, ipfs string, addr models.Address) (models.Voter, error) {
	var voter models.Voter
	err := e.mutate(ctx, "voter registered", func(st *state) error {
		id, err := st.nextID(KindVoter)
		if err != nil {
			return err
		}
		voter = models.Voter{
			Address:    addr,
			Name:       name,
			IPFS:       ipfs,
			RegisterID: id,
			Status:     models.StatusPending,
			HasVoted:   false,
			Message:    models.PendingMessage,
		}
		if err := st.putVoter(voter); err != nil {
			return err
		}
		return st.appendTo(registeredList(KindVoter), addr)
	}, "address", addr)
	if err != nil {
		return models.Voter{}, err
	}
	return voter, nil
}

// RegisterCandidate is RegisterVoter for candidates, with its own id counter.
func (e *Election) RegisterCandidate(ctx context.Context, name, ipfs string, addr models.Address) (models.Candidate, error) {
	var candidate models.Candidate
	err := e.mutate(ctx, "candidate registered", func(st *state) error {
		id, err := st.nextID(KindCandidate)
		if err != nil {
			return err
		}
		candidate = models.Candidate{
			Address:    addr,
			Name:       name,
			IPFS:       ipfs,
			RegisterID: id,
			Status:     models.StatusPending,
			VoteCount:  new(uint256.Int),
			Message:    models.PendingMessage,
		}
		if err := st.putCandidate(candidate); err != nil {
			return err
		}
		return st.appendTo(registeredList(KindCandidate), addr)
	}, "address", addr)
	if err != nil {
		return models.Candidate{}, err
	}
	return candidate, nil
}

func (e *Election) ApproveVoter(ctx context.Context, caller, addr models.Address, message string) error {
	return e.mutate(ctx, "voter approved", func(st *state) error {
		return st.decideVoter(caller, addr, message, models.StatusApproved, true)
	}, "address", addr, "caller", caller)
}

func (e *Election) ApproveCandidate(ctx context.Context, caller, addr models.Address, message string) error {
	return e.mutate(ctx, "candidate approved", func(st *state) error {
		return st.decideCandidate(caller, addr, message, models.StatusApproved, true)
	}, "address", addr, "caller", caller)
}

// RejectVoter stores the owner's message. Unless Rules.StrictReject is set the
// status is left Approved, as legacy elections did.
func (e *Election) RejectVoter(ctx context.Context, caller, addr models.Address, message string) error {
	return e.mutate(ctx, "voter rejected", func(st *state) error {
		return st.decideVoter(caller, addr, message, e.rejectStatus(), false)
	}, "address", addr, "caller", caller)
}

func (e *Election) RejectCandidate(ctx context.Context, caller, addr models.Address, message string) error {
	return e.mutate(ctx, "candidate rejected", func(st *state) error {
		return st.decideCandidate(caller, addr, message, e.rejectStatus(), false)
	}, "address", addr, "caller", caller)
}

func (e *Election) rejectStatus() models.Status {
	if e.rules.StrictReject {
		return models.StatusRejected
	}
	return models.StatusApproved
}

func (s *state) decideVoter(caller, addr models.Address, message string, status models.Status, listApproved bool) error {
	if err := s.requireOwner(caller); err != nil {
		return err
	}
	voter, found, err := s.voter(addr)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: voter %s", ErrNotFound, addr)
	}
	voter.Status = status
	voter.Message = message
	if err := s.putVoter(voter); err != nil {
		return err
	}
	if !listApproved {
		return nil
	}
	return s.appendTo(approvedList(KindVoter), addr)
}

func (s *state) decideCandidate(caller, addr models.Address, message string, status models.Status, listApproved bool) error {
	if err := s.requireOwner(caller); err != nil {
		return err
	}
	candidate, found, err := s.candidate(addr)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: candidate %s", ErrNotFound, addr)
	}
	candidate.Status = status
	candidate.Message = message
	if err := s.putCandidate(candidate); err != nil {
		return err
	}
	if !listApproved {
		return nil
	}
	return s.appendTo(approvedList(KindCandidate), addr)
}

// UpdateVoter overwrites name and ipfs. Anyone may call it.
func (e *Election) UpdateVoter(ctx context.Context, name, ipfs string, addr models.Address) error {
	return e.mutate(ctx, "voter updated", func(st *state) error {
		voter, found, err := st.voter(addr)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: voter %s", ErrNotFound, addr)
		}
		voter.Name = name
		voter.IPFS = ipfs
		return st.putVoter(voter)
	}, "address", addr)
}

func (e *Election) UpdateCandidate(ctx context.Context, name, ipfs string, addr models.Address) error {
	return e.mutate(ctx, "candidate updated", func(st *state) error {
		candidate, found, err := st.candidate(addr)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: candidate %s", ErrNotFound, addr)
		}
		candidate.Name = name
		candidate.IPFS = ipfs
		return st.putCandidate(candidate)
	}, "address", addr)
}

func (e *Election) SetVotingPeriod(ctx context.Context, caller models.Address, start, end uint64) error {
	return e.mutate(ctx, "voting period set", func(st *state) error {
		return st.setPeriod(caller, start, end)
	}, "start", start, "end", end, "caller", caller)
}

// Vote records one vote from voterAddr for candidateAddr.
func (e *Election) Vote(ctx context.Context, candidateAddr, voterAddr models.Address) error {
	now := e.now()
	return e.mutate(ctx, "vote cast", func(st *state) error {
		active, err := st.isActive(now)
		if err != nil {
			return err
		}
		if !active {
			return fmt.Errorf("%w: timestamp %d", ErrVotingNotActive, now)
		}

		voter, found, err := st.voter(voterAddr)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: voter %s", ErrNotFound, voterAddr)
		}
		if voter.Status != models.StatusApproved {
			return fmt.Errorf("%w: voter %s", ErrNotApproved, voterAddr)
		}
		if voter.HasVoted {
			return fmt.Errorf("%w: voter %s", ErrAlreadyVoted, voterAddr)
		}

		candidate, found, err := st.candidate(candidateAddr)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: candidate %s", ErrNotFound, candidateAddr)
		}
		if candidate.Status != models.StatusApproved {
			return fmt.Errorf("%w: candidate %s", ErrNotApproved, candidateAddr)
		}

		voter.HasVoted = true
		candidate.VoteCount = new(uint256.Int).AddUint64(voteCount(candidate), 1)

		if err := st.putCandidate(candidate); err != nil {
			return err
		}
		if err := st.putVoter(voter); err != nil {
			return err
		}

		// Legacy elections never persisted this list.
		if e.rules.RecordVotedVoters {
			return st.appendTo(listVotedVoters, voterAddr)
		}
		return nil
	}, "candidate", candidateAddr, "voter", voterAddr)
}

func (e *Election) ChangeOwner(ctx context.Context, caller, newOwner models.Address) error {
	return e.mutate(ctx, "owner changed", func(st *state) error {
		return st.setOwner(caller, newOwner)
	}, "caller", caller, "new_owner", newOwner)
}

// Reset removes every registered voter and candidate, empties all registry
// lists, and returns the counters and voting period to their initial values.
// The owner is kept.
func (e *Election) Reset(ctx context.Context, caller models.Address) error {
	return e.mutate(ctx, "election reset", func(st *state) error {
		if err := st.requireOwner(caller); err != nil {
			return err
		}

		voters, err := st.all(listRegisteredVoters)
		if err != nil {
			return err
		}
		for _, addr := range voters {
			if err := st.removeVoter(addr); err != nil {
				return err
			}
		}

		candidates, err := st.all(listRegisteredCandidates)
		if err != nil {
			return err
		}
		for _, addr := range candidates {
			if err := st.removeCandidate(addr); err != nil {
				return err
			}
		}

		for _, l := range allLists {
			if err := st.clear(l); err != nil {
				return err
			}
		}
		if err := st.resetCounters(); err != nil {
			return err
		}
		return st.resetPeriod()
	}, "caller", caller)
}
