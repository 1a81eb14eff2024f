// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/records-dashboard/models"
)

// ParseClaimsUnverified decodes the registered claims of a JWT without
// checking its signature. The client cannot verify backend-issued tokens;
// the result is for display and logging only.
//
// Returns an error when tokenString is not a well-formed JWT.
func ParseClaimsUnverified(tokenString string) (models.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return models.TokenClaims{}, fmt.Errorf("error parsing token claims: %w", err)
	}

	result := models.TokenClaims{
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}
