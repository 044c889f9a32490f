// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform provides shared file management functionality.
package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMockFileNotFound is returned by the mock file manager for unknown paths.
var ErrMockFileNotFound = errors.New("mock file not found")

// FileManager implements the FileManager port for real file operations.
type FileManager struct {
	verbose bool
}

// NewFileManager creates a new file manager.
func NewFileManager(verbose bool) *FileManager {
	return &FileManager{
		verbose: verbose,
	}
}

// FileExists checks if a file exists.
func (f *FileManager) FileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

// EnsureDir creates a directory and all parent directories if they don't exist.
func (f *FileManager) EnsureDir(path string) error {
	if f.verbose {
		fmt.Printf("Ensuring directory exists: %s\n", path)
	}

	// #nosec G301 - Standard directory permissions for application directories
	return os.MkdirAll(path, 0755)
}

// WriteFile writes data to a file.
func (f *FileManager) WriteFile(path string, data []byte) error {
	if f.verbose {
		fmt.Printf("Writing file: %s (%d bytes)\n", path, len(data))
	}

	// Ensure directory exists
	if err := f.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// #nosec G306 - Standard file permissions for configuration files
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads data from a file.
func (f *FileManager) ReadFile(path string) ([]byte, error) {
	if f.verbose {
		fmt.Printf("Reading file: %s\n", path)
	}

	// #nosec G304 - File path comes from trusted application code
	return os.ReadFile(path)
}

// MockFileManager implements the FileManager port for testing.
type MockFileManager struct {
	files   map[string][]byte // path -> content
	verbose bool
}

// NewMockFileManager creates a new mock file manager for testing.
func NewMockFileManager(verbose bool) *MockFileManager {
	return &MockFileManager{
		files:   make(map[string][]byte),
		verbose: verbose,
	}
}

// SetMockFile sets the content of a mock file.
func (f *MockFileManager) SetMockFile(path string, content []byte) {
	f.files[path] = content
}

// FileExists checks if a mock file exists.
func (f *MockFileManager) FileExists(path string) bool {
	_, exists := f.files[path]

	return exists
}

// EnsureDir does nothing in mock mode.
func (f *MockFileManager) EnsureDir(path string) error {
	if f.verbose {
		fmt.Printf("MOCK: Ensuring directory: %s\n", path)
	}

	return nil
}

// WriteFile writes to a mock file.
func (f *MockFileManager) WriteFile(path string, data []byte) error {
	if f.verbose {
		fmt.Printf("MOCK: Writing file %s (%d bytes)\n", path, len(data))
	}

	f.files[path] = data

	return nil
}

// ReadFile reads from a mock file.
func (f *MockFileManager) ReadFile(path string) ([]byte, error) {
	if f.verbose {
		fmt.Printf("MOCK: Reading file %s\n", path)
	}

	content, exists := f.files[path]
	if !exists {
		return nil, ErrMockFileNotFound
	}

	return content, nil
}
