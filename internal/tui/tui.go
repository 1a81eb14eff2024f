// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders pending-record banners and runs the interactive
// dashboard.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/records-dashboard/internal/logger"
	"github.com/MKhiriev/records-dashboard/internal/service"
	"github.com/MKhiriev/records-dashboard/models"
)

// TUI runs the interactive dashboard program.
type TUI struct {
	dashboard service.DashboardService
	logger    *logger.Logger
}

// New returns a TUI showing the counts reported by dashboard.
func New(dashboard service.DashboardService, log *logger.Logger) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{dashboard: dashboard, logger: log}
}

// Run starts the dashboard and blocks until the user quits or ctx is done.
// Counts are refreshed every interval (never when interval is not positive).
// onReview is called with the source of every banner the user reviews.
func (t *TUI) Run(ctx context.Context, interval time.Duration, onReview func(models.RecordSource)) error {
	model := newDashboardModel(ctx, t.dashboard, interval, onReview)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "TUI.Run").Msg("dashboard program failed")
		return err
	}

	return nil
}

// BannerFor builds the banner of a single pending result. OnReview is left
// for the caller to set.
func BannerFor(p models.PendingRecords) Banner {
	return Banner{Noun: p.Source.Noun, Count: p.Count}
}

// RenderPending renders one banner per result, in order, for non-interactive
// output.
func RenderPending(pending []models.PendingRecords) string {
	views := make([]string, 0, len(pending))
	for _, p := range pending {
		views = append(views, BannerFor(p).View())
	}
	return strings.Join(views, "\n")
}
