// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by token store methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyToken is returned when saving a blank session token.
	ErrEmptyToken = errors.New("session token is empty")

	// ErrNilDB is returned when a store is constructed without a database.
	ErrNilDB = errors.New("database is nil")
)

// Low-level database operation errors wrapped by store methods when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
