// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags_AllFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	err := fs.Parse([]string{
		"--endpoint", "https://flags.example.co",
		"--anon-key", "flag-key",
		"--request-timeout", "5s",
		"--session-dsn", "flags.db",
		"--session-key", "token",
		"--source", "contacts:email",
		"--source", "deals:amount:open deals",
		"--refresh-interval", "45s",
		"-c", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://flags.example.co", cfg.Backend.EndpointURL)
	assert.Equal(t, "flag-key", cfg.Backend.AnonKey)
	assert.Equal(t, 5*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "flags.db", cfg.Session.DSN)
	assert.Equal(t, "token", cfg.Session.TokenKey)
	assert.Equal(t, []string{"contacts:email", "deals:amount:open deals"}, cfg.Dashboard.Sources)
	assert.Equal(t, 45*time.Second, cfg.Dashboard.RefreshInterval)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestBindFlags_NoFlagsLeavesZeroConfig(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBindFlags_InvalidDuration(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	err := fs.Parse([]string{"--request-timeout", "soon"})
	assert.Error(t, err)
}
