// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocalDBFileIfNotExists_Path(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "nested", "session.db")

	require.NoError(t, createLocalDBFileIfNotExists(dbFile))
	_, err := os.Stat(dbFile)
	assert.NoError(t, err)

	// existing file is left alone
	require.NoError(t, os.WriteFile(dbFile, []byte("data"), 0o600))
	require.NoError(t, createLocalDBFileIfNotExists(dbFile))
	content, err := os.ReadFile(dbFile)
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

func TestCreateLocalDBFileIfNotExists_URIDSN(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, createLocalDBFileIfNotExists("file:session.db?_busy_timeout=5000"))

	entries, err := os.ReadDir(".")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
