// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's persistent local storage.
//
// The only persisted value is the session token, kept under a single string
// key. [TokenReader] is the read-only capability handed to the client
// factory; [TokenStore] adds the write side used by the session commands.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenReader reads the session token from persistent storage.
type TokenReader interface {
	// GetToken returns the stored token. ok is false when no token is stored,
	// which is the anonymous path and not an error. err is reserved for
	// storage failures.
	GetToken(ctx context.Context) (token string, ok bool, err error)
}

// TokenStore is a [TokenReader] that can also write the session token.
type TokenStore interface {
	TokenReader

	// SaveToken stores token under the configured key, replacing any
	// previous value. A blank token is rejected with [ErrEmptyToken].
	SaveToken(ctx context.Context, token string) error

	// ClearToken removes the stored token. Clearing an absent token is not
	// an error.
	ClearToken(ctx context.Context) error
}
