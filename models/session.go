// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is a read-only description of the locally stored session token.
//
// Token is never rendered in full; see [Session.MaskedToken].
type Session struct {
	// Present is false when no token is stored (anonymous access).
	Present bool `json:"present"`

	// Token is the raw bearer token.
	Token string `json:"-"`

	// Claims holds the unverified JWT claims when Token parses as a JWT.
	Claims *TokenClaims `json:"claims,omitempty"`
}

// MaskedToken returns the first and last four characters of the token.
func (s Session) MaskedToken() string {
	runes := []rune(s.Token)
	if len(runes) <= 8 {
		return "****"
	}
	return string(runes[:4]) + "…" + string(runes[len(runes)-4:])
}

// TokenClaims is the subset of registered JWT claims the client cares about.
// Values come from an unverified parse: the backend is the only party that
// can check the signature.
type TokenClaims struct {
	Subject   string    `json:"sub,omitempty"`
	Issuer    string    `json:"iss,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
}

// Expired reports whether the claims carry an expiry that lies before now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}
