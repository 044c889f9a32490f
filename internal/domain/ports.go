// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "context"

// FamilyTool is the per-family capability behind every package operation.
// One implementation exists per Family; adding a family is additive.
type FamilyTool interface {
	// Family returns the package family this tool serves.
	Family() Family

	// ExtractInfo reads the metadata record from a package file.
	// It returns ErrExtractionFailed (wrapped with a reason) when the
	// inspect command fails or no control file can be found.
	ExtractInfo(ctx context.Context, path string) (*Metadata, error)

	// IsInstalled reports whether the named package is installed, with a
	// human-readable status message. It never returns an error; internal
	// failures yield (false, message).
	IsInstalled(ctx context.Context, name string) (bool, string)

	// InstalledVersion returns the installed version of the named package,
	// or "" when the package is absent or the query fails.
	InstalledVersion(ctx context.Context, name string) string

	// FindIcon returns an icon file path or bare theme name for an
	// installed package, or "" when none is found.
	FindIcon(name string) string

	// InstallCommand returns the privileged argv that installs the given
	// package file.
	InstallCommand(path string) []string

	// RequiredTools lists the executables that must be resolvable on the
	// search path before installing, including the privilege helper.
	RequiredTools() []string
}

// CommandRunner defines the interface for executing system commands.
type CommandRunner interface {
	// ExecuteWithOutput runs a command and returns its standard output.
	ExecuteWithOutput(ctx context.Context, name string, args ...string) (string, error)

	// CommandExists checks if a command is available on the system.
	CommandExists(name string) bool
}

// FileManager defines the interface for file operations.
type FileManager interface {
	// FileExists checks if a file exists.
	FileExists(path string) bool

	// EnsureDir creates a directory and all parent directories if they don't exist.
	EnsureDir(path string) error

	// WriteFile writes data to a file.
	WriteFile(path string, data []byte) error

	// ReadFile reads data from a file.
	ReadFile(path string) ([]byte, error)
}
