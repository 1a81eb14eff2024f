// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import "errors"

var (
	// ErrReadSession wraps a failure of the token reader. An absent token is
	// not an error and never produces it.
	ErrReadSession = errors.New("error reading session token")
	// ErrNilTokenReader is returned when the factory is built without a
	// token reader.
	ErrNilTokenReader = errors.New("token reader is nil")
	// ErrMissingCount is returned when a count response carries no usable
	// Content-Range header.
	ErrMissingCount = errors.New("response has no record count")
)

// Transport errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
