// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/records-dashboard/internal/backend"
	"github.com/MKhiriev/records-dashboard/internal/config"
	"github.com/MKhiriev/records-dashboard/internal/logger"
	"github.com/MKhiriev/records-dashboard/internal/service"
	"github.com/MKhiriev/records-dashboard/internal/store"
	"github.com/MKhiriev/records-dashboard/internal/tui"
	"github.com/MKhiriev/records-dashboard/models"
)

var (
	ErrNilConfig   = errors.New("client config is nil")
	ErrNilStorages = errors.New("client storages are nil")
)

// App is the wired application.
type App struct {
	Config   *config.ClientConfig
	Services *service.ClientServices
	UI       *tui.TUI

	storages *store.ClientStorages
	logger   *logger.Logger
}

// NewApp opens the session storage described by cfg.Session and wires the
// application on top of it. The caller must Close the returned App.
//
// Returns an error when storage cannot be opened or migrated, or when the
// backend settings fail validation (a [*config.ConfigurationError]).
//
// Example usage:
//
//	app, err := client.NewApp(ctx, cfg, log)
//	if err != nil {
//	    return err
//	}
//	defer app.Close()
//	pending, err := app.Services.Dashboard.Pending(ctx)
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if log == nil {
		log = logger.Nop()
	}

	storages, err := store.NewClientStorages(ctx, cfg.Session, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app, err := NewAppWithStorages(cfg, storages, log)
	if err != nil {
		storages.Close()
		return nil, err
	}

	return app, nil
}

// NewAppWithStorages wires the application on top of already opened
// storages. Close releases them.
func NewAppWithStorages(cfg *config.ClientConfig, storages *store.ClientStorages, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if storages == nil {
		return nil, ErrNilStorages
	}
	if log == nil {
		log = logger.Nop()
	}

	clients, err := backend.NewClientFactory(cfg.Backend, storages.Tokens, log)
	if err != nil {
		return nil, fmt.Errorf("create backend client factory: %w", err)
	}

	services, err := service.NewClientServices(clients, storages.Tokens, cfg.Dashboard.Sources, log)
	if err != nil {
		return nil, fmt.Errorf("create client services: %w", err)
	}

	var ui *tui.TUI
	if services.Dashboard != nil {
		ui = tui.New(services.Dashboard, log)
	}

	return &App{
		Config:   cfg,
		Services: services,
		UI:       ui,
		storages: storages,
		logger:   log,
	}, nil
}

// Dashboard returns the dashboard service, or [service.ErrNoRecordSources]
// when nothing is configured to be counted.
func (a *App) Dashboard() (service.DashboardService, error) {
	if a.Services.Dashboard == nil {
		return nil, fmt.Errorf("%w: set DASHBOARD_SOURCES or --source table:column[:noun]", service.ErrNoRecordSources)
	}
	return a.Services.Dashboard, nil
}

// RunDashboard runs the interactive dashboard until the user quits.
// onReview receives the source of every reviewed banner.
func (a *App) RunDashboard(ctx context.Context, onReview func(models.RecordSource)) error {
	if _, err := a.Dashboard(); err != nil {
		return err
	}

	a.logger.Info().Str("func", "App.RunDashboard").Int("sources", len(a.Config.Dashboard.Sources)).Msg("starting dashboard")
	return a.UI.Run(ctx, a.Config.Dashboard.RefreshInterval, onReview)
}

// ReviewURL returns the backend address listing the incomplete rows of src.
func (a *App) ReviewURL(src models.RecordSource) string {
	return backend.IncompleteQuery(src).URL(a.Config.Backend.EndpointURL)
}

// Close releases the session storage.
func (a *App) Close() error {
	return a.storages.Close()
}
