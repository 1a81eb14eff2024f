// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNilClientAcquirer = errors.New("client acquirer is nil")
	ErrNilTokenStore     = errors.New("token store is nil")
	ErrNoRecordSources   = errors.New("no record sources configured")

	// ErrSessionRejected is returned when the backend refuses the stored
	// session token (expired, revoked or malformed).
	ErrSessionRejected = errors.New("session rejected by backend, log in again")
	// ErrAccessDenied is returned when the session is valid but may not read
	// a record source.
	ErrAccessDenied = errors.New("access to record source denied")
	// ErrUnknownSource is returned when a configured table does not exist on
	// the backend.
	ErrUnknownSource = errors.New("record source not found on backend")
	// ErrBackendUnavailable covers 5xx answers of the backend.
	ErrBackendUnavailable = errors.New("backend unavailable")
)
