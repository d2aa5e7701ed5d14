// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"github.com/holiman/uint256"

	"github.com/danielhkuo/voting-org/models"
)

func (s *state) voter(addr models.Address) (models.Voter, bool, error) {
	var v models.Voter
	found, err := s.getJSON(voterKey(addr), &v)
	if err != nil || !found {
		return models.Voter{}, false, err
	}
	return v, true, nil
}

func (s *state) putVoter(v models.Voter) error {
	return s.setJSON(voterKey(v.Address), v)
}

func (s *state) removeVoter(addr models.Address) error {
	return s.remove(voterKey(addr))
}

func (s *state) candidate(addr models.Address) (models.Candidate, bool, error) {
	var c models.Candidate
	found, err := s.getJSON(candidateKey(addr), &c)
	if err != nil || !found {
		return models.Candidate{}, false, err
	}
	return c, true, nil
}

func (s *state) putCandidate(c models.Candidate) error {
	return s.setJSON(candidateKey(c.Address), c)
}

func (s *state) removeCandidate(addr models.Address) error {
	return s.remove(candidateKey(addr))
}

// resolveVoters loads the records behind addrs in order, skipping addresses
// with no stored record.
func (s *state) resolveVoters(addrs []models.Address) ([]models.Voter, error) {
	voters := []models.Voter{}
	for _, addr := range addrs {
		v, found, err := s.voter(addr)
		if err != nil {
			return nil, err
		}
		if found {
			voters = append(voters, v)
		}
	}
	return voters, nil
}

func (s *state) resolveCandidates(addrs []models.Address) ([]models.Candidate, error) {
	candidates := []models.Candidate{}
	for _, addr := range addrs {
		c, found, err := s.candidate(addr)
		if err != nil {
			return nil, err
		}
		if found {
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}

// voteCount treats a missing count as zero.
func voteCount(c models.Candidate) *uint256.Int {
	if c.VoteCount == nil {
		return new(uint256.Int)
	}
	return c.VoteCount
}
