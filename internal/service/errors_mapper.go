// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/records-dashboard/internal/backend"
)

// mapBackendError translates a transport error of the backend client into a
// service error. The original error stays in the chain.
func mapBackendError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, backend.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrSessionRejected, err)
	case errors.Is(err, backend.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	case errors.Is(err, backend.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrUnknownSource, err)
	case errors.Is(err, backend.ErrInternalServerError), errors.Is(err, backend.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	return err
}
