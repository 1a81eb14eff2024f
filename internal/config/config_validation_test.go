// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/records-dashboard/models"
)

func validBackend() ClientBackend {
	return ClientBackend{
		EndpointURL:    "https://project.example.co",
		AnonKey:        "anon-key",
		RequestTimeout: time.Second,
	}
}

func TestClientBackend_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *ClientBackend)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientBackend) {}},
		{name: "localhost endpoint", mutate: func(b *ClientBackend) { b.EndpointURL = "http://localhost:54321" }},
		{name: "missing endpoint", mutate: func(b *ClientBackend) { b.EndpointURL = "" }, wantErr: ErrMissingEndpoint},
		{name: "blank endpoint", mutate: func(b *ClientBackend) { b.EndpointURL = "   " }, wantErr: ErrMissingEndpoint},
		{name: "not http", mutate: func(b *ClientBackend) { b.EndpointURL = "ftp://files.example.co" }, wantErr: ErrInvalidEndpoint},
		{name: "not a url", mutate: func(b *ClientBackend) { b.EndpointURL = "project" }, wantErr: ErrInvalidEndpoint},
		{name: "missing key", mutate: func(b *ClientBackend) { b.AnonKey = "" }, wantErr: ErrMissingAnonKey},
		{name: "blank key", mutate: func(b *ClientBackend) { b.AnonKey = " \t" }, wantErr: ErrMissingAnonKey},
		{name: "zero timeout", mutate: func(b *ClientBackend) { b.RequestTimeout = 0 }, wantErr: ErrInvalidTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBackend()
			tt.mutate(&b)

			err := b.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var cfgErr *ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestClientBackend_Validate_BothMissing(t *testing.T) {
	b := ClientBackend{RequestTimeout: time.Second}

	err := b.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingEndpoint)
	assert.ErrorIs(t, err, ErrMissingAnonKey)
}

func TestConfigurationError_Message(t *testing.T) {
	err := &ConfigurationError{Field: EnvAnonKey, Reason: ErrMissingAnonKey}
	assert.Equal(t, "configuration error: SERVICE_ANON_KEY: missing service anon key", err.Error())

	var nilErr *ConfigurationError
	assert.Equal(t, "configuration error", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
}

func TestParseRecordSources(t *testing.T) {
	got, err := ParseRecordSources([]string{"contacts:email", " ", "deals : amount : open deals"})
	require.NoError(t, err)

	assert.Equal(t, []models.RecordSource{
		{Table: "contacts", Column: "email", Noun: "contacts"},
		{Table: "deals", Column: "amount", Noun: "open deals"},
	}, got)
}

func TestParseRecordSources_Invalid(t *testing.T) {
	for _, raw := range []string{"contacts", "a:b:c:d", "drop table;:x", "contacts:"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseRecordSources([]string{raw})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDashboardConfigs)
		})
	}
}
