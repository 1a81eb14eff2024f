// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Backend holds the backend-as-a-service endpoint and public key.
	Backend Backend `envPrefix:"SERVICE_"`

	// Session holds settings of the local session token storage.
	Session Session `envPrefix:"SESSION_"`

	// Dashboard holds the record sources shown as banners.
	Dashboard Dashboard `envPrefix:"DASHBOARD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Backend holds the connection settings of the backend-as-a-service.
type Backend struct {
	// EndpointURL is the base URL of the service (e.g. "https://xyz.example.co").
	// Env: SERVICE_ENDPOINT_URL
	EndpointURL string `env:"ENDPOINT_URL"`

	// AnonKey is the public API key sent with every request.
	// Env: SERVICE_ANON_KEY
	AnonKey string `env:"ANON_KEY"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: SERVICE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds settings of the local session token storage.
type Session struct {
	// DSN is the SQLite database file holding the session token.
	// Env: SESSION_DSN
	DSN string `env:"DSN"`

	// TokenKey is the storage key the session token is saved under.
	// Env: SESSION_TOKEN_KEY
	TokenKey string `env:"TOKEN_KEY"`
}

// Dashboard holds the record sources and refresh settings of the dashboard.
type Dashboard struct {
	// Sources lists record sources in "table:column[:noun]" form.
	// Env: DASHBOARD_SOURCES (comma separated)
	Sources []string `env:"SOURCES" envSeparator:","`

	// RefreshInterval controls how often pending counts are reloaded.
	// Env: DASHBOARD_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

const (
	defaultRequestTimeout  = 15 * time.Second
	defaultSessionDSN      = "session.db"
	defaultSessionTokenKey = "access_token"
	defaultRefreshInterval = time.Minute
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Backend: Backend{
			RequestTimeout: defaultRequestTimeout,
		},
		Session: Session{
			DSN:      defaultSessionDSN,
			TokenKey: defaultSessionTokenKey,
		},
		Dashboard: Dashboard{
			RefreshInterval: defaultRefreshInterval,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags (flagCfg, may be nil)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left zero are filled with defaults. No validation is performed
// here; see [GetClientConfig].
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flagCfg).
		withJSON().
		build()
}
