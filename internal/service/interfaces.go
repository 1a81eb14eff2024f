// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/records-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DashboardService reports how many records of each configured source are
// still incomplete.
type DashboardService interface {
	// Sources returns the configured record sources in display order.
	Sources() []models.RecordSource

	// Pending acquires a fresh backend client and counts the incomplete rows
	// of every source. The result follows the order of Sources. The first
	// failing source aborts the whole call.
	Pending(ctx context.Context) ([]models.PendingRecords, error)
}

// SessionService manages the locally persisted session token that the
// backend client factory reads on every call.
type SessionService interface {
	// Login persists token as the current session and returns its description.
	// A blank token is rejected.
	Login(ctx context.Context, token string) (models.Session, error)

	// Logout clears the stored token. Subsequent clients are anonymous.
	Logout(ctx context.Context) error

	// Describe returns the current session. Claims are filled in when the
	// token parses as a JWT.
	Describe(ctx context.Context) (models.Session, error)
}

// PendingRefreshJob periodically recounts pending records in the background.
type PendingRefreshJob interface {
	// Start stops any running job and begins calling DashboardService.Pending
	// every interval, passing each outcome to onResult. It returns
	// immediately.
	Start(ctx context.Context, interval time.Duration, onResult func([]models.PendingRecords, error))

	// Stop cancels the running job and waits for it to exit. Safe to call
	// when no job is running.
	Stop()
}
