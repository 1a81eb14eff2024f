// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers all configuration flags on fs and returns the config
// value they write into. The returned config is only meaningful after fs has
// been parsed.
//
// Flags:
//
//	--endpoint          backend endpoint URL
//	--anon-key          backend public API key
//	--request-timeout   outbound request timeout (e.g. "15s")
//	--session-dsn       SQLite file holding the session token
//	--session-key       storage key of the session token
//	--source            record source "table:column[:noun]" (repeatable)
//	--refresh-interval  dashboard refresh interval (e.g. "1m")
//	-c/--config         json file path with configs
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Backend.EndpointURL, "endpoint", "", "Backend endpoint URL")
	fs.StringVar(&cfg.Backend.AnonKey, "anon-key", "", "Backend public API key")
	fs.DurationVar(&cfg.Backend.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&cfg.Session.DSN, "session-dsn", "", "Session database file")
	fs.StringVar(&cfg.Session.TokenKey, "session-key", "", "Session token storage key")
	fs.StringSliceVar(&cfg.Dashboard.Sources, "source", nil, "Record source table:column[:noun] (repeatable)")
	fs.DurationVar(&cfg.Dashboard.RefreshInterval, "refresh-interval", 0, "Dashboard refresh interval (e.g., 30s, 1m)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}
