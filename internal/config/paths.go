// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config resolves XDG paths and persists user settings.
package config

import (
	"os"
	"path/filepath"
)

const appDirName = "pakdrop"

// XDGConfigHome returns the XDG config directory.
func XDGConfigHome() string {
	return XDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// XDGConfigHomeWithEnv returns the XDG config directory with a custom
// environment override for testing.
func XDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// XDGDataHome returns the XDG data directory.
func XDGDataHome() string {
	return XDGDataHomeWithEnv(os.Getenv("XDG_DATA_HOME"))
}

// XDGDataHomeWithEnv returns the XDG data directory with a custom
// environment override for testing.
func XDGDataHomeWithEnv(xdgDataHome string) string {
	if xdgDataHome != "" {
		return xdgDataHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share")
	}

	return ""
}

// SettingsPath returns the location of the persisted settings file.
func SettingsPath() string {
	return filepath.Join(XDGConfigHome(), appDirName, "settings.toml")
}

// LockPath returns the location of the single-instance lock file.
func LockPath() string {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		runtimeDir = os.TempDir()
	}

	return filepath.Join(runtimeDir, appDirName+".lock")
}
