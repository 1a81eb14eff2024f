// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionsTable     = "sessions"
	columnTokenKey    = "token_key"
	columnToken       = "token"
	columnUpdatedAt   = "updated_at"
	upsertTokenSuffix = "ON CONFLICT(" + columnTokenKey + ") DO UPDATE SET " +
		columnToken + " = excluded." + columnToken + ", " +
		columnUpdatedAt + " = excluded." + columnUpdatedAt
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetTokenQuery(key string) (string, []any, error) {
	return psql.
		Select(columnToken).
		From(sessionsTable).
		Where(sq.Eq{columnTokenKey: key}).
		ToSql()
}

func buildSaveTokenQuery(key, token string, now time.Time) (string, []any, error) {
	return psql.
		Insert(sessionsTable).
		Columns(columnTokenKey, columnToken, columnUpdatedAt).
		Values(key, token, now.UTC()).
		Suffix(upsertTokenSuffix).
		ToSql()
}

func buildClearTokenQuery(key string) (string, []any, error) {
	return psql.
		Delete(sessionsTable).
		Where(sq.Eq{columnTokenKey: key}).
		ToSql()
}
