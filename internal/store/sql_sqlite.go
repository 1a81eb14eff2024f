// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/records-dashboard/internal/config"
	"github.com/MKhiriev/records-dashboard/internal/logger"
)

// NewConnectSQLite opens the SQLite database named by cfg.DSN and pings it.
//
// A plain path has its file and directory created when missing. A URI DSN
// ("file:session.db?_busy_timeout=5000") is passed to the driver untouched.
//
// Parameters:
//   - ctx: bounds the initial ping.
//   - cfg: session settings; only DSN is used here.
//   - log: logger for connection diagnostics.
//
// Returns a [*DB] limited to one open connection, or an error when the file
// cannot be created, opened or pinged.
func NewConnectSQLite(ctx context.Context, cfg config.ClientSession, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// a single writer avoids SQLITE_BUSY between our own connections
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("connected to database successfully")

	return NewDB(conn, log), nil
}

// sqliteURIPrefix marks a DSN the driver parses as a URI; the driver creates
// such files itself.
const sqliteURIPrefix = "file:"

func createLocalDBFileIfNotExists(dbFile string) error {
	if strings.HasPrefix(dbFile, sqliteURIPrefix) {
		return nil
	}

	if _, err := os.Stat(dbFile); !os.IsNotExist(err) {
		// file already exists
		return nil
	}

	if dir := filepath.Dir(dbFile); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}
	}

	f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}
