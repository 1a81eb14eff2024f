// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/records-dashboard/internal/backend"
	"github.com/MKhiriev/records-dashboard/internal/logger"
	"github.com/MKhiriev/records-dashboard/internal/store"
	"github.com/MKhiriev/records-dashboard/models"
)

// ClientServices groups the services used by the CLI commands.
//
// Dashboard and RefreshJob are nil when no record sources are configured;
// session management works without them.
type ClientServices struct {
	Dashboard  DashboardService
	Session    SessionService
	RefreshJob PendingRefreshJob
}

// NewClientServices wires the services on top of the client factory and the
// local token store.
func NewClientServices(clients backend.ClientAcquirer, tokens store.TokenStore, sources []models.RecordSource, log *logger.Logger) (*ClientServices, error) {
	session, err := NewSessionService(tokens, log)
	if err != nil {
		return nil, err
	}

	services := &ClientServices{Session: session}
	if len(sources) == 0 {
		return services, nil
	}

	dashboard, err := NewDashboardService(clients, sources, log)
	if err != nil {
		return nil, err
	}
	services.Dashboard = dashboard
	services.RefreshJob = NewPendingRefreshJob(dashboard)

	return services, nil
}
