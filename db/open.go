// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/voting-org/cliparse"
	"github.com/danielhkuo/voting-org/storage"
	"github.com/danielhkuo/voting-org/storage/mem"
)

// Open connects to the configured SQL database, verifies the connection and
// creates the schema.
func Open(ctx context.Context, cfg cliparse.Config) (*sql.DB, error) {
	driver := "sqlite"
	if cfg.DatabaseType == cliparse.DatabasePostgres {
		driver = "postgres"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if driver == "sqlite" {
		// One connection keeps :memory: databases intact and sqlite writes serialized
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := CreateSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// OpenStore returns the storage backend for cfg.DatabaseType.
func OpenStore(ctx context.Context, cfg cliparse.Config) (storage.Store, error) {
	if cfg.DatabaseType == cliparse.DatabaseMemory {
		return mem.NewMemStore(), nil
	}
	conn, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewStore(conn), nil
}
