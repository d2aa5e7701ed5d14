// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/danielhkuo/voting-org/models"
)

func (e *Election) RegisteredVoters(ctx context.Context) ([]models.Voter, error) {
	return e.listVoters(ctx, listRegisteredVoters)
}

func (e *Election) ApprovedVoters(ctx context.Context) ([]models.Voter, error) {
	return e.listVoters(ctx, listApprovedVoters)
}

func (e *Election) RegisteredCandidates(ctx context.Context) ([]models.Candidate, error) {
	return e.listCandidates(ctx, listRegisteredCandidates)
}

func (e *Election) ApprovedCandidates(ctx context.Context) ([]models.Candidate, error) {
	return e.listCandidates(ctx, listApprovedCandidates)
}

func (e *Election) listVoters(ctx context.Context, l list) ([]models.Voter, error) {
	var voters []models.Voter
	err := e.view(ctx, func(st *state) error {
		addrs, err := st.all(l)
		if err != nil {
			return err
		}
		voters, err = st.resolveVoters(addrs)
		return err
	})
	return voters, err
}

func (e *Election) listCandidates(ctx context.Context, l list) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := e.view(ctx, func(st *state) error {
		addrs, err := st.all(l)
		if err != nil {
			return err
		}
		candidates, err = st.resolveCandidates(addrs)
		return err
	})
	return candidates, err
}

// Voter returns the record stored for addr and whether there is one.
func (e *Election) Voter(ctx context.Context, addr models.Address) (models.Voter, bool, error) {
	var (
		voter models.Voter
		found bool
	)
	err := e.view(ctx, func(st *state) error {
		var err error
		voter, found, err = st.voter(addr)
		return err
	})
	return voter, found, err
}

func (e *Election) Candidate(ctx context.Context, addr models.Address) (models.Candidate, bool, error) {
	var (
		candidate models.Candidate
		found     bool
	)
	err := e.view(ctx, func(st *state) error {
		var err error
		candidate, found, err = st.candidate(addr)
		return err
	})
	return candidate, found, err
}

// VotedVoters returns the persisted VotedVoters list. It stays empty unless
// Rules.RecordVotedVoters is set.
func (e *Election) VotedVoters(ctx context.Context) ([]models.Address, error) {
	var addrs []models.Address
	err := e.view(ctx, func(st *state) error {
		var err error
		addrs, err = st.all(listVotedVoters)
		return err
	})
	return addrs, err
}

// CurrentLeader returns the registered candidate with the most votes. The
// earliest registered wins a tie, and a candidate needs at least one vote to
// lead, so found is false until the first vote is cast.
func (e *Election) CurrentLeader(ctx context.Context) (models.Candidate, bool, error) {
	var (
		leader models.Candidate
		found  bool
	)
	err := e.view(ctx, func(st *state) error {
		var err error
		leader, found, err = st.leader()
		return err
	})
	return leader, found, err
}

// Winner is CurrentLeader once the voting period has ended.
func (e *Election) Winner(ctx context.Context) (models.Candidate, bool, error) {
	now := e.now()
	var (
		winner models.Candidate
		found  bool
	)
	err := e.view(ctx, func(st *state) error {
		_, end, err := st.window()
		if err != nil {
			return err
		}
		if now <= end {
			return fmt.Errorf("%w: ends at %d, now %d", ErrVotingStillActive, end, now)
		}
		winner, found, err = st.leader()
		return err
	})
	return winner, found, err
}

func (s *state) leader() (models.Candidate, bool, error) {
	addrs, err := s.all(listRegisteredCandidates)
	if err != nil {
		return models.Candidate{}, false, err
	}
	candidates, err := s.resolveCandidates(addrs)
	if err != nil {
		return models.Candidate{}, false, err
	}

	var (
		best  models.Candidate
		found bool
	)
	most := new(uint256.Int)
	for _, c := range candidates {
		if count := voteCount(c); most.Lt(count) {
			best, most, found = c, count, true
		}
	}
	return best, found, nil
}

// VotingWindow returns the voting period, (0, 0) if it was never set.
func (e *Election) VotingWindow(ctx context.Context) (start, end uint64, err error) {
	err = e.view(ctx, func(st *state) error {
		start, end, err = st.window()
		return err
	})
	return start, end, err
}

// IsActive reports whether a vote cast now would be inside the window.
func (e *Election) IsActive(ctx context.Context) (bool, error) {
	now := e.now()
	var active bool
	err := e.view(ctx, func(st *state) error {
		var err error
		active, err = st.isActive(now)
		return err
	})
	return active, err
}

// Owner returns the owner and whether one is configured.
func (e *Election) Owner(ctx context.Context) (models.Address, bool, error) {
	var (
		owner      models.Address
		configured bool
	)
	err := e.view(ctx, func(st *state) error {
		var err error
		owner, configured, err = st.owner()
		return err
	})
	return owner, configured, err
}

// Summary tallies every registered candidate in registration order. An
// address registered twice is counted once.
func (e *Election) Summary(ctx context.Context) (models.Summary, error) {
	summary := models.Summary{
		Tallies:    []models.Tally{},
		TotalVotes: new(uint256.Int),
	}
	err := e.view(ctx, func(st *state) error {
		addrs, err := st.all(listRegisteredCandidates)
		if err != nil {
			return err
		}
		candidates, err := st.resolveCandidates(dedupe(addrs))
		if err != nil {
			return err
		}
		for _, c := range candidates {
			count := voteCount(c)
			summary.Tallies = append(summary.Tallies, models.Tally{
				Address:   c.Address,
				Name:      c.Name,
				Status:    c.Status,
				VoteCount: count,
			})
			summary.TotalVotes.Add(summary.TotalVotes, count)
		}

		registered, err := st.all(listRegisteredVoters)
		if err != nil {
			return err
		}
		approved, err := st.all(listApprovedVoters)
		if err != nil {
			return err
		}
		summary.RegisteredVoters = len(dedupe(registered))
		summary.ApprovedVoters = len(dedupe(approved))
		return nil
	})
	if err != nil {
		return models.Summary{}, err
	}
	return summary, nil
}

func dedupe(addrs []models.Address) []models.Address {
	seen := make(map[models.Address]bool, len(addrs))
	out := make([]models.Address, 0, len(addrs))
	for _, addr := range addrs {
		if seen[addr] {
			continue
		}
		seen[addr] = true
		out = append(out, addr)
	}
	return out
}
