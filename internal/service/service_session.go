// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/records-dashboard/internal/logger"
	"github.com/MKhiriev/records-dashboard/internal/store"
	"github.com/MKhiriev/records-dashboard/internal/utils"
	"github.com/MKhiriev/records-dashboard/models"
)

type sessionService struct {
	tokens store.TokenStore

	logger *logger.Logger
}

// NewSessionService returns a SessionService backed by tokens.
func NewSessionService(tokens store.TokenStore, log *logger.Logger) (SessionService, error) {
	if tokens == nil {
		return nil, ErrNilTokenStore
	}
	if log == nil {
		log = logger.Nop()
	}

	return &sessionService{tokens: tokens, logger: log}, nil
}

func (s *sessionService) Login(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContextOr(ctx, s.logger)

	// accept a pasted header value as well as a bare token
	if parsed, err := utils.ParseBearerToken(token); err == nil {
		token = parsed
	}
	token = strings.TrimSpace(token)

	if err := s.tokens.SaveToken(ctx, token); err != nil {
		log.Err(err).Str("func", "sessionService.Login").Msg("failed to save session token")
		return models.Session{}, fmt.Errorf("save session token: %w", err)
	}

	session := describeToken(token)
	event := log.Info().Str("func", "sessionService.Login")
	if session.Claims != nil {
		event = event.Str("subject", session.Claims.Subject)
	}
	event.Msg("session token stored")

	return session, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	log := logger.FromContextOr(ctx, s.logger)

	if err := s.tokens.ClearToken(ctx); err != nil {
		log.Err(err).Str("func", "sessionService.Logout").Msg("failed to clear session token")
		return fmt.Errorf("clear session token: %w", err)
	}

	log.Info().Str("func", "sessionService.Logout").Msg("session token cleared")
	return nil
}

func (s *sessionService) Describe(ctx context.Context) (models.Session, error) {
	token, ok, err := s.tokens.GetToken(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("read session token: %w", err)
	}
	if !ok {
		return models.Session{}, nil
	}

	return describeToken(token), nil
}

func describeToken(token string) models.Session {
	session := models.Session{Present: token != "", Token: token}
	if claims, err := utils.ParseClaimsUnverified(token); err == nil {
		session.Claims = &claims
	}
	return session
}
