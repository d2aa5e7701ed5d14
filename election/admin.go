// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"

	"github.com/danielhkuo/voting-org/models"
)

// owner returns the stored owner and whether one has been configured.
func (s *state) owner() (models.Address, bool, error) {
	var owner models.Address
	configured, err := s.getJSON(keyOwner, &owner)
	return owner, configured, err
}

// requireOwner fails unless an owner is configured and caller is exactly it.
// An unconfigured owner matches nobody, including the empty address.
func (s *state) requireOwner(caller models.Address) error {
	owner, configured, err := s.owner()
	if err != nil {
		return err
	}
	if !configured || caller != owner {
		return fmt.Errorf("%w: %q is not the owner", ErrUnauthorized, caller)
	}
	return nil
}

func (s *state) setOwner(caller, newOwner models.Address) error {
	if err := s.requireOwner(caller); err != nil {
		return err
	}
	return s.setJSON(keyOwner, newOwner)
}
