// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/janderssonse/pakdrop/internal/adapters/platform"
	"github.com/janderssonse/pakdrop/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXDGConfigHomeWithEnv(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/custom/config", config.XDGConfigHomeWithEnv("/custom/config"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config"), config.XDGConfigHomeWithEnv(""))
}

func TestXDGDataHomeWithEnv(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/custom/data", config.XDGDataHomeWithEnv("/custom/data"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share"), config.XDGDataHomeWithEnv(""))
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	store := config.NewStoreAt(path, platform.NewFileManager(false))

	assert.False(t, store.Exists())
	assert.Equal(t, config.Settings{}, store.Load())

	require.NoError(t, store.Save(config.Settings{Language: "pt"}))
	assert.True(t, store.Exists())
	assert.Equal(t, "pt", store.Load().Language)
}

func TestStoreRoundTripWithMockFiles(t *testing.T) {
	t.Parallel()

	files := platform.NewMockFileManager(false)
	store := config.NewStoreAt("/etc/pakdrop/settings.toml", files)

	assert.False(t, store.Exists())

	require.NoError(t, store.Save(config.Settings{Language: "zh"}))
	assert.True(t, store.Exists())
	assert.Equal(t, "zh", store.Load().Language)
}

func TestStoreLoadCorruptFile(t *testing.T) {
	t.Parallel()

	files := platform.NewMockFileManager(false)
	files.SetMockFile("/etc/pakdrop/settings.toml", []byte("language = [not toml"))

	store := config.NewStoreAt("/etc/pakdrop/settings.toml", files)
	assert.Equal(t, config.Settings{}, store.Load())
}
