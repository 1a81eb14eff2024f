// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/records-dashboard/internal/config"
	"github.com/MKhiriev/records-dashboard/internal/logger"
	"github.com/MKhiriev/records-dashboard/internal/store"
	"github.com/MKhiriev/records-dashboard/internal/utils"
)

// ClientFactory produces authenticated [Client] handles. It holds no mutable
// state and is safe for concurrent use.
type ClientFactory struct {
	cfg    config.ClientBackend
	tokens store.TokenReader
	logger *logger.Logger
	now    func() time.Time
}

// NewClientFactory validates cfg and returns a factory reading session
// tokens from tokens.
//
// Validation happens here only, never per [ClientFactory.AcquireClient]
// call, and the token reader is not consulted.
//
// Parameters:
//   - cfg: endpoint URL, public API key and request timeout. The endpoint is
//     trimmed of whitespace and trailing slashes.
//   - tokens: reader of the persisted session token; must not be nil.
//   - log: logger for acquisition diagnostics; nil selects [logger.Nop].
//
// Returns the factory, or:
//   - a [*config.ConfigurationError] (errors.Is [config.ErrMissingEndpoint],
//     [config.ErrMissingAnonKey] or [config.ErrInvalidEndpoint]) when cfg is
//     incomplete; callers treat it as fatal.
//   - [ErrNilTokenReader] when tokens is nil.
//
// Example usage:
//
//	factory, err := backend.NewClientFactory(cfg.Backend, storages.Tokens, log)
//	if err != nil {
//	    log.Fatal().Err(err).Msg("invalid backend configuration")
//	}
//	client, err := factory.AcquireClient(ctx)
func NewClientFactory(cfg config.ClientBackend, tokens store.TokenReader, log *logger.Logger) (*ClientFactory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tokens == nil {
		return nil, ErrNilTokenReader
	}
	if log == nil {
		log = logger.Nop()
	}

	cfg.EndpointURL = strings.TrimRight(strings.TrimSpace(cfg.EndpointURL), "/")
	cfg.AnonKey = strings.TrimSpace(cfg.AnonKey)

	return &ClientFactory{
		cfg:    cfg,
		tokens: tokens,
		logger: log,
		now:    time.Now,
	}, nil
}

// AcquireClient reads the session token and builds a new client bound to it.
//
// An absent token yields an anonymous client (no Authorization header). A
// token reader failure is returned wrapped in [ErrReadSession]. Nothing is
// cached: every call reads storage and constructs a fresh handle.
func (f *ClientFactory) AcquireClient(ctx context.Context) (*Client, error) {
	log := logger.FromContextOr(ctx, f.logger)

	token, ok, err := f.tokens.GetToken(ctx)
	if err != nil {
		log.Err(err).Str("func", "ClientFactory.AcquireClient").Msg("failed to read session token")
		return nil, fmt.Errorf("%w: %w", ErrReadSession, err)
	}
	if !ok {
		token = ""
	}

	client := newClient(f.cfg, token)
	f.logAcquired(log, client, token)

	return client, nil
}

func (f *ClientFactory) logAcquired(log *logger.Logger, client *Client, token string) {
	if client.Anonymous() {
		log.Debug().
			Str("func", "ClientFactory.AcquireClient").
			Str("endpoint", client.Endpoint()).
			Msg("acquired anonymous client")
		return
	}

	event := log.Debug().
		Str("func", "ClientFactory.AcquireClient").
		Str("endpoint", client.Endpoint())

	claims, err := utils.ParseClaimsUnverified(token)
	if err != nil {
		// opaque tokens are valid, they just carry nothing to log
		event.Msg("acquired authenticated client")
		return
	}

	event.Str("subject", claims.Subject).Msg("acquired authenticated client")
	if claims.Expired(f.now()) {
		log.Warn().
			Str("func", "ClientFactory.AcquireClient").
			Str("subject", claims.Subject).
			Time("expired_at", claims.ExpiresAt).
			Msg("session token has expired, requests will likely be rejected")
	}
}
