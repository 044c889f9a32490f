// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"fmt"
	"path/filepath"

	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// Settings holds the persisted user preferences.
type Settings struct {
	// Language is a BCP 47 tag such as "en" or "pt". Empty means follow
	// the system locale.
	Language string `toml:"language"`
}

// Store reads and writes settings at a fixed path through the FileManager
// port.
type Store struct {
	path  string
	files domain.FileManager
}

// NewStore creates a store backed by the default settings file.
func NewStore(files domain.FileManager) *Store {
	return NewStoreAt(SettingsPath(), files)
}

// NewStoreAt creates a store backed by the given file, for testing.
func NewStoreAt(path string, files domain.FileManager) *Store {
	return &Store{path: path, files: files}
}

// Load reads settings from disk. A missing file yields defaults, not an
// error; a corrupt file does too, so a bad edit never blocks startup.
func (s *Store) Load() Settings {
	var settings Settings

	data, err := s.files.ReadFile(s.path)
	if err != nil {
		return settings
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}
	}

	return settings
}

// Save writes settings to disk, creating parent directories as needed.
func (s *Store) Save(settings Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := s.files.EnsureDir(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := s.files.WriteFile(s.path, data); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// Exists reports whether a settings file has been written before.
func (s *Store) Exists() bool {
	return s.files.FileExists(s.path)
}
