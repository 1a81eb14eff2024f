// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"sync"
)

type memoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenStore returns a process-local [TokenStore] seeded with
// token. An empty token starts in the anonymous state. The store is safe for
// concurrent use and forgets everything when the process exits.
//
// Example usage:
//
//	tokens := store.NewMemoryTokenStore("")
//	_ = tokens.SaveToken(ctx, "abc123")
func NewMemoryTokenStore(token string) TokenStore {
	return &memoryTokenStore{token: strings.TrimSpace(token)}
}

func (m *memoryTokenStore) GetToken(_ context.Context) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != "", nil
}

func (m *memoryTokenStore) SaveToken(_ context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memoryTokenStore) ClearToken(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
