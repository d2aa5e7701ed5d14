// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"github.com/holiman/uint256"

	"github.com/danielhkuo/voting-org/models"
)

// Kind selects the voter or candidate half of the registry.
type Kind string

const (
	KindVoter     Kind = "voter"
	KindCandidate Kind = "candidate"
)

// list names an append-only address sequence in the registry.
type list string

const (
	listRegisteredVoters     list = "RegisteredVoters"
	listRegisteredCandidates list = "RegisteredCandidates"
	listApprovedVoters       list = "ApprovedVoters"
	listApprovedCandidates   list = "ApprovedCandidates"
	listVotedVoters          list = "VotedVoters"
)

var allLists = []list{
	listRegisteredVoters,
	listRegisteredCandidates,
	listApprovedVoters,
	listApprovedCandidates,
	listVotedVoters,
}

func counterKey(kind Kind) string {
	if kind == KindCandidate {
		return keyCandidateIDCounter
	}
	return keyVoterIDCounter
}

func registeredList(kind Kind) list {
	if kind == KindCandidate {
		return listRegisteredCandidates
	}
	return listRegisteredVoters
}

func approvedList(kind Kind) list {
	if kind == KindCandidate {
		return listApprovedCandidates
	}
	return listApprovedVoters
}

// counter reads the next id to hand out for kind; an unset counter reads 1.
func (s *state) counter(kind Kind) (*uint256.Int, error) {
	id := uint256.NewInt(1)
	if _, err := s.getJSON(counterKey(kind), id); err != nil {
		return nil, err
	}
	return id, nil
}

// nextID returns the current counter value for kind and advances it by one.
func (s *state) nextID(kind Kind) (*uint256.Int, error) {
	id, err := s.counter(kind)
	if err != nil {
		return nil, err
	}
	next := new(uint256.Int).AddUint64(id, 1)
	if err := s.setJSON(counterKey(kind), next); err != nil {
		return nil, err
	}
	return id, nil
}

func (s *state) resetCounters() error {
	one := uint256.NewInt(1)
	if err := s.setJSON(keyVoterIDCounter, one); err != nil {
		return err
	}
	return s.setJSON(keyCandidateIDCounter, one)
}

// all returns the full sequence, empty if it was never written.
func (s *state) all(l list) ([]models.Address, error) {
	var addrs []models.Address
	if _, err := s.getJSON(string(l), &addrs); err != nil {
		return nil, err
	}
	if addrs == nil {
		addrs = []models.Address{}
	}
	return addrs, nil
}

// appendTo appends without a uniqueness check.
func (s *state) appendTo(l list, addr models.Address) error {
	addrs, err := s.all(l)
	if err != nil {
		return err
	}
	return s.setJSON(string(l), append(addrs, addr))
}

func (s *state) clear(l list) error {
	return s.remove(string(l))
}
