// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// client: bearer header helpers, unverified JWT inspection, request id
// generation and HTTP client initialization.
package utils

import (
	"errors"
	"strings"
)

// BearerScheme is the authorization scheme used for session tokens.
const BearerScheme = "Bearer"

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// BearerValue returns the Authorization header value for token, or an empty
// string when token is blank.
//
// Example usage:
//
//	utils.BearerValue("abc123") // "Bearer abc123"
//	utils.BearerValue("")       // ""
func BearerValue(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	return BearerScheme + " " + token
}

// ParseBearerToken extracts the token from an Authorization header value.
// The scheme is matched case-insensitively.
func ParseBearerToken(value string) (string, error) {
	parts := strings.Fields(value)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
