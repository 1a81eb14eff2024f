// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/records-dashboard/internal/config"
	"github.com/MKhiriev/records-dashboard/internal/logger"
)

// MemoryDSN selects the in-memory token store instead of a SQLite file.
const MemoryDSN = ":memory:"

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// Tokens holds the session token.
	Tokens TokenStore

	db *DB
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens an SQLite connection to cfg.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [TokenStore] keyed by cfg.TokenKey.
//
// A DSN of [MemoryDSN] skips SQLite entirely and keeps the token in memory.
func NewClientStorages(ctx context.Context, cfg config.ClientSession, log *logger.Logger) (*ClientStorages, error) {
	if log == nil {
		log = logger.Nop()
	}
	log.Info().Msg("creating new storages...")

	if cfg.DSN == MemoryDSN {
		return &ClientStorages{Tokens: NewMemoryTokenStore("")}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	tokens, err := NewSQLiteTokenStore(db, cfg.TokenKey, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ClientStorages{Tokens: tokens, db: db}, nil
}

// Close releases the underlying database, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
