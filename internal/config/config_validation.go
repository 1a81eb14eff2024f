// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/records-dashboard/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var identifierRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the backend settings. It is called once when the client
// factory is built and never per request.
//
// Returns a [*ConfigurationError] per failing field, joined with
// [errors.Join] when more than one field fails.
func (b ClientBackend) Validate() error {
	b.EndpointURL = strings.TrimSpace(b.EndpointURL)
	b.AnonKey = strings.TrimSpace(b.AnonKey)

	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate backend config: %w", err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, backendFieldError(fe))
	}
	if len(errs) == 1 {
		return errs[0]
	}

	return errors.Join(errs...)
}

func backendFieldError(fe validator.FieldError) *ConfigurationError {
	switch fe.StructField() {
	case "EndpointURL":
		if fe.Tag() == "required" {
			return &ConfigurationError{Field: EnvEndpointURL, Reason: ErrMissingEndpoint}
		}
		return &ConfigurationError{Field: EnvEndpointURL, Reason: ErrInvalidEndpoint}
	case "AnonKey":
		return &ConfigurationError{Field: EnvAnonKey, Reason: ErrMissingAnonKey}
	case "RequestTimeout":
		return &ConfigurationError{Field: "SERVICE_REQUEST_TIMEOUT", Reason: ErrInvalidTimeout}
	default:
		return &ConfigurationError{Field: fe.Namespace(), Reason: fmt.Errorf("failed %q check", fe.Tag())}
	}
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Backend.Validate(); err != nil {
		return err
	}

	if err := validate.Struct(cfg.Session); err != nil {
		return &ConfigurationError{Field: "SESSION", Reason: fmt.Errorf("%w: %v", ErrInvalidSessionConfigs, err)}
	}

	if err := validate.Struct(cfg.Dashboard); err != nil {
		return &ConfigurationError{Field: "DASHBOARD_REFRESH_INTERVAL", Reason: fmt.Errorf("%w: %v", ErrInvalidDashboardConfigs, err)}
	}

	return nil
}

// ParseRecordSources parses "table:column[:noun]" entries. Blank entries are
// skipped. The noun defaults to the table name.
func ParseRecordSources(raw []string) ([]models.RecordSource, error) {
	sources := make([]models.RecordSource, 0, len(raw))
	for _, entry := range raw {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, invalidSource(entry)
		}

		src := models.RecordSource{
			Table:  strings.TrimSpace(parts[0]),
			Column: strings.TrimSpace(parts[1]),
		}
		if !identifierRegexp.MatchString(src.Table) || !identifierRegexp.MatchString(src.Column) {
			return nil, invalidSource(entry)
		}

		src.Noun = src.Table
		if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
			src.Noun = strings.TrimSpace(parts[2])
		}

		sources = append(sources, src)
	}

	return sources, nil
}

func invalidSource(entry string) *ConfigurationError {
	return &ConfigurationError{
		Field:  "DASHBOARD_SOURCES",
		Reason: fmt.Errorf("%w: source %q must look like table:column[:noun]", ErrInvalidDashboardConfigs, entry),
	}
}
