// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// Validation errors carried by [ConfigurationError.Reason]. Callers match
// them with [errors.Is].
var (
	// ErrMissingEndpoint indicates that SERVICE_ENDPOINT_URL is not set.
	ErrMissingEndpoint = errors.New("missing service endpoint url")
	// ErrInvalidEndpoint indicates that the endpoint is not an absolute
	// http(s) URL.
	ErrInvalidEndpoint = errors.New("invalid service endpoint url")
	// ErrMissingAnonKey indicates that SERVICE_ANON_KEY is not set.
	ErrMissingAnonKey = errors.New("missing service anon key")
	// ErrInvalidTimeout indicates a non-positive request timeout.
	ErrInvalidTimeout = errors.New("invalid request timeout")
	// ErrInvalidSessionConfigs indicates an empty session DSN or token key.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidDashboardConfigs indicates a malformed record source or a
	// non-positive refresh interval.
	ErrInvalidDashboardConfigs = errors.New("invalid dashboard configuration")
)

// ConfigurationError reports a missing or invalid configuration value.
// It is fatal: the process must not continue without a valid backend
// endpoint and key.
type ConfigurationError struct {
	// Field is the environment variable name of the offending value.
	Field string
	// Reason is one of the sentinel errors of this package.
	Reason error
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return "configuration error"
	}
	return fmt.Sprintf("configuration error: %s: %v", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Reason
}
