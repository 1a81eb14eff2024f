// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/records-dashboard/internal/backend"
	"github.com/MKhiriev/records-dashboard/internal/logger"
	"github.com/MKhiriev/records-dashboard/models"
)

type dashboardService struct {
	clients backend.ClientAcquirer
	sources []models.RecordSource

	logger *logger.Logger
}

// NewDashboardService returns a DashboardService counting incomplete rows of
// sources through clients handed out by clients.
//
// Parameters:
//   - clients: hands out a fresh backend client per Pending call.
//   - sources: record sources in display order; copied.
//   - log: fallback logger when the call context carries none.
//
// Returns [ErrNilClientAcquirer] or [ErrNoRecordSources] on invalid input.
func NewDashboardService(clients backend.ClientAcquirer, sources []models.RecordSource, log *logger.Logger) (DashboardService, error) {
	if clients == nil {
		return nil, ErrNilClientAcquirer
	}
	if len(sources) == 0 {
		return nil, ErrNoRecordSources
	}
	if log == nil {
		log = logger.Nop()
	}

	return &dashboardService{
		clients: clients,
		sources: slices.Clone(sources),
		logger:  log,
	}, nil
}

func (s *dashboardService) Sources() []models.RecordSource {
	return slices.Clone(s.sources)
}

func (s *dashboardService) Pending(ctx context.Context) ([]models.PendingRecords, error) {
	log := logger.FromContextOr(ctx, s.logger)

	client, err := s.clients.AcquireClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire backend client: %w", err)
	}

	pending := make([]models.PendingRecords, 0, len(s.sources))
	for _, src := range s.sources {
		count, err := client.CountRecords(ctx, backend.IncompleteQuery(src))
		if err != nil {
			log.Err(err).
				Str("func", "dashboardService.Pending").
				Str("table", src.Table).
				Bool("anonymous", client.Anonymous()).
				Msg("failed to count incomplete records")
			return nil, fmt.Errorf("count incomplete %s: %w", src.Table, mapBackendError(err))
		}

		pending = append(pending, models.PendingRecords{Source: src, Count: count})
	}

	log.Debug().
		Str("func", "dashboardService.Pending").
		Int("sources", len(pending)).
		Bool("anonymous", client.Anonymous()).
		Msg("counted incomplete records")

	return pending, nil
}
