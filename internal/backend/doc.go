// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backend builds authenticated clients for the backend-as-a-service.
//
// [ClientFactory] validates the endpoint and public key once, at
// construction. Every [ClientFactory.AcquireClient] call then reads the
// session token afresh and returns a new [Client] whose headers are a
// snapshot of that token: "apikey: <key>" always, and
// "Authorization: Bearer <token>" only when a token is stored. Handles are
// never updated after construction, and no network I/O happens until a
// handle is used.
//
// Error values defined in errors.go are mapped from HTTP status codes so
// callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package backend
