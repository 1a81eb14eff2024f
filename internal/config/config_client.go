// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/records-dashboard/models"
)

// Environment variable names of the required backend settings.
const (
	EnvEndpointURL = "SERVICE_ENDPOINT_URL"
	EnvAnonKey     = "SERVICE_ANON_KEY"
)

// ClientBackend holds the validated backend-as-a-service settings.
type ClientBackend struct {
	// EndpointURL is the service base URL without a trailing slash.
	EndpointURL string `validate:"required,http_url"`
	// AnonKey is the public API key.
	AnonKey string `validate:"required"`
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration `validate:"gt=0"`
}

// ClientSession holds local session storage settings.
type ClientSession struct {
	// DSN is the SQLite database file.
	DSN string `validate:"required"`
	// TokenKey is the key the session token is stored under.
	TokenKey string `validate:"required"`
}

// ClientDashboard holds parsed record sources.
type ClientDashboard struct {
	Sources         []models.RecordSource
	RefreshInterval time.Duration `validate:"gt=0"`
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Backend   ClientBackend
	Session   ClientSession
	Dashboard ClientDashboard
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration. flagCfg is the value returned by
// [BindFlags] after flag parsing, or nil.
//
// Any missing or malformed required value yields a [*ConfigurationError]
// (possibly several, joined).
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	sources, err := ParseRecordSources(cfg.Dashboard.Sources)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Backend: ClientBackend{
			EndpointURL:    strings.TrimRight(strings.TrimSpace(cfg.Backend.EndpointURL), "/"),
			AnonKey:        strings.TrimSpace(cfg.Backend.AnonKey),
			RequestTimeout: cfg.Backend.RequestTimeout,
		},
		Session: ClientSession{
			DSN:      cfg.Session.DSN,
			TokenKey: cfg.Session.TokenKey,
		},
		Dashboard: ClientDashboard{
			Sources:         sources,
			RefreshInterval: cfg.Dashboard.RefreshInterval,
		},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
