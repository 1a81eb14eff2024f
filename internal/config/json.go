// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape accepted from
// a JSON config file.
type StructuredJSONConfig struct {
	Service struct {
		EndpointURL    string   `json:"endpoint_url"`
		AnonKey        string   `json:"anon_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"service,omitempty"`

	Session struct {
		DSN      string `json:"dsn"`
		TokenKey string `json:"token_key"`
	} `json:"session,omitempty"`

	Dashboard struct {
		Sources         []string `json:"sources"`
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"dashboard,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Backend: Backend{
			EndpointURL:    jsonCfg.Service.EndpointURL,
			AnonKey:        jsonCfg.Service.AnonKey,
			RequestTimeout: time.Duration(jsonCfg.Service.RequestTimeout),
		},
		Session: Session{
			DSN:      jsonCfg.Session.DSN,
			TokenKey: jsonCfg.Session.TokenKey,
		},
		Dashboard: Dashboard{
			Sources:         jsonCfg.Dashboard.Sources,
			RefreshInterval: time.Duration(jsonCfg.Dashboard.RefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
