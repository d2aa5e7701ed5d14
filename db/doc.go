// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists the election on a SQL database.

# Opening

OpenStore picks the backend from the configuration:

	store, err := db.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

Backends:

  - sqlite (default): modernc.org/sqlite, pure Go, one open connection
  - postgres: github.com/lib/pq
  - memory: storage/mem, nothing is written to disk

# Schema Creation

CreateSchema creates the single kv_entry table. Safe to call multiple times -
uses IF NOT EXISTS.

	kv_entry (entry_key TEXT PRIMARY KEY, entry_value TEXT, updated_at TIMESTAMP)

Values are JSON documents written by the election package.

# Transactions

Store implements storage.Store. Update wraps one database transaction and
commits only when the callback succeeds; Update calls are serialized by a
process-wide lock.
*/
package db
