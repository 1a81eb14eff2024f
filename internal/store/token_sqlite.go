// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/records-dashboard/internal/logger"
)

const (
	maxWriteAttempts = 3
	writeRetryDelay  = 50 * time.Millisecond
)

type sqliteTokenStore struct {
	*DB
	key    string
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLiteTokenStore returns a [TokenStore] keeping the token in the
// sessions table of db under key.
//
// Writes are retried while SQLite reports the database as busy or locked.
// The sessions table must exist; see [DB.Migrate].
//
// Parameters:
//   - db: migrated database wrapper; must not be nil.
//   - key: row key the token is stored under (e.g. "access_token").
//   - log: logger for storage diagnostics; nil selects [logger.Nop].
//
// Returns [ErrNilDB] when db or its connection is nil.
//
// Example usage:
//
//	tokens, err := store.NewSQLiteTokenStore(db, "access_token", log)
//	if err != nil {
//	    return err
//	}
//	token, ok, err := tokens.GetToken(ctx)
func NewSQLiteTokenStore(db *DB, key string, log *logger.Logger) (TokenStore, error) {
	if db == nil || db.DB == nil {
		return nil, ErrNilDB
	}
	if log == nil {
		log = logger.Nop()
	}

	return &sqliteTokenStore{
		DB:     db,
		key:    key,
		now:    time.Now,
		logger: log,
	}, nil
}

func (s *sqliteTokenStore) GetToken(ctx context.Context) (string, bool, error) {
	query, args, err := buildGetTokenQuery(s.key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var token string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteTokenStore.GetToken").
			Str("key", s.key).
			Msg("failed to read session token")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false, nil
	}

	return token, true, nil
}

func (s *sqliteTokenStore) SaveToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	query, args, err := buildSaveTokenQuery(s.key, token, s.now())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if err = s.execWithRetry(ctx, "sqliteTokenStore.SaveToken", query, args...); err != nil {
		return err
	}

	s.logger.Debug().Str("func", "sqliteTokenStore.SaveToken").Str("key", s.key).Msg("session token saved")
	return nil
}

func (s *sqliteTokenStore) ClearToken(ctx context.Context) error {
	query, args, err := buildClearTokenQuery(s.key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if err = s.execWithRetry(ctx, "sqliteTokenStore.ClearToken", query, args...); err != nil {
		return err
	}

	s.logger.Debug().Str("func", "sqliteTokenStore.ClearToken").Str("key", s.key).Msg("session token cleared")
	return nil
}

// execWithRetry runs a write statement, retrying while the file is locked by
// another process.
func (s *sqliteTokenStore) execWithRetry(ctx context.Context, funcName, query string, args ...any) error {
	var err error
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		_, err = s.DB.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}
		if s.errorClassificator.Classify(err) != Retryable || attempt == maxWriteAttempts {
			break
		}

		s.logger.Warn().Err(err).Str("func", funcName).Int("attempt", attempt).Msg("database is locked, retrying")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(writeRetryDelay):
		}
	}

	s.logger.Err(err).Str("func", funcName).Str("key", s.key).Msg("failed to execute statement")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
