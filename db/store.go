// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/danielhkuo/voting-org/storage"
)

var _ storage.Store = (*Store)(nil)

var errReadOnly = errors.New("write in read-only transaction")

// Store keeps election state in the kv_entry table. Update calls are
// serialized so a list read-modify-write never races another writer.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Update(ctx context.Context, fn func(tx storage.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&sqlTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Store) View(ctx context.Context, fn func(tx storage.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	return fn(&sqlTx{tx: tx, readOnly: true})
}

func (s *Store) Close() error {
	return s.db.Close()
}

type sqlTx struct {
	tx       *sql.Tx
	readOnly bool
}

func (t *sqlTx) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := t.tx.QueryRowContext(ctx, `
		SELECT entry_value FROM kv_entry WHERE entry_key = $1
	`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (t *sqlTx) Set(ctx context.Context, key string, value []byte) error {
	if t.readOnly {
		return errReadOnly
	}
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO kv_entry (entry_key, entry_value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (entry_key) DO UPDATE
		SET entry_value = excluded.entry_value, updated_at = excluded.updated_at
	`, key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert %s: %w", key, err)
	}
	return nil
}

func (t *sqlTx) Remove(ctx context.Context, key string) error {
	if t.readOnly {
		return errReadOnly
	}
	_, err := t.tx.ExecContext(ctx, `DELETE FROM kv_entry WHERE entry_key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
