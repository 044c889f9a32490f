// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "time"

// OutputPort defines the interface for presenting command results.
// This is a domain port that adapters implement for different output formats.
type OutputPort interface {
	// Success outputs a success message with optional structured data
	Success(message string, data interface{}) error

	// Error outputs an error message
	Error(message string) error

	// Info outputs an informational message
	Info(message string) error

	// Progress outputs progress information for long-running operations
	Progress(message string) error

	// Table outputs tabular data
	Table(headers []string, rows [][]string) error

	// IsQuiet returns true if output should be suppressed
	IsQuiet() bool
}

// InspectResult is everything an inspection of one package file yields.
type InspectResult struct {
	Path             string      `json:"path"`
	Metadata         *Metadata   `json:"metadata"`
	Compatible       bool        `json:"compatible"`
	HostFamily       Family      `json:"host_family"`
	Installed        bool        `json:"installed"`
	InstalledVersion string      `json:"installed_version,omitempty"`
	Disposition      Disposition `json:"disposition"`
	IconPath         string      `json:"icon,omitempty"`
}

// InstallReport is the outcome of one installation run.
type InstallReport struct {
	Path      string        `json:"path"`
	Family    Family        `json:"family"`
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
}

// DependencyReport lists tool availability for one family.
type DependencyReport struct {
	Family  Family   `json:"family"`
	Ready   bool     `json:"ready"`
	Missing []string `json:"missing,omitempty"`
	Message string   `json:"message"`
}
