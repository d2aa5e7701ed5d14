// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/danielhkuo/voting-org/models"
	"github.com/danielhkuo/voting-org/storage"
)

// Storage keys
const (
	keyOwner              = "Owner"
	keyVoterIDCounter     = "VoterIdCounter"
	keyCandidateIDCounter = "CandidateIdCounter"
	keyStartTime          = "StartTime"
	keyEndTime            = "EndTime"
)

func voterKey(addr models.Address) string     { return "Voter/" + string(addr) }
func candidateKey(addr models.Address) string { return "Candidate/" + string(addr) }

// state is the election as seen from inside one transaction. Every operation
// builds a fresh one; nothing outlives the transaction.
type state struct {
	ctx context.Context
	tx  storage.Tx
}

func newState(ctx context.Context, tx storage.Tx) *state {
	return &state{ctx: ctx, tx: tx}
}

// getJSON decodes key into v and reports whether the key was present.
// v is left untouched when it is absent.
func (s *state) getJSON(key string, v any) (bool, error) {
	raw, found, err := s.tx.Get(s.ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *state) setJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.tx.Set(s.ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *state) remove(key string) error {
	if err := s.tx.Remove(s.ctx, key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
