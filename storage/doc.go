// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage defines the key/value substrate the election is persisted on.

# Transactions

Every election operation runs inside exactly one call:

	err := store.Update(ctx, func(tx storage.Tx) error {
		raw, found, err := tx.Get(ctx, "Owner")
		// ...
		return tx.Set(ctx, "Owner", raw)
	})

If fn returns an error nothing it wrote is visible afterwards. Update calls are
serialized by the store, so a read-modify-write of a whole list value never
loses a concurrent append.

# Implementations

  - storage/mem: map-backed, for tests and the "memory" database type
  - db: SQL table on database/sql (sqlite or postgres)
*/
package storage
