// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"

	"github.com/danielhkuo/voting-org/models"
)

// window returns the persisted voting period, (0, 0) if never set.
func (s *state) window() (start, end uint64, err error) {
	if _, err = s.getJSON(keyStartTime, &start); err != nil {
		return 0, 0, err
	}
	if _, err = s.getJSON(keyEndTime, &end); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func (s *state) setPeriod(caller models.Address, start, end uint64) error {
	if err := s.requireOwner(caller); err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("%w: start %d, end %d", ErrInvalidPeriod, start, end)
	}
	if err := s.setJSON(keyStartTime, start); err != nil {
		return err
	}
	return s.setJSON(keyEndTime, end)
}

// isActive is true iff start <= now <= end. The default (0, 0) window is
// therefore open only at timestamp 0.
func (s *state) isActive(now uint64) (bool, error) {
	start, end, err := s.window()
	if err != nil {
		return false, err
	}
	return start <= now && now <= end, nil
}

func (s *state) resetPeriod() error {
	if err := s.setJSON(keyStartTime, uint64(0)); err != nil {
		return err
	}
	return s.setJSON(keyEndTime, uint64(0))
}
