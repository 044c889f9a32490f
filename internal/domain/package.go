// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

// Default strings substituted when a source field is absent.
const (
	UnknownValue  = "Unknown"
	NoDescription = "No description"
)

// Metadata is the canonical record extracted from a package file.
// It is created once per selected file and read-only afterward.
type Metadata struct {
	Name          string `json:"name"`
	Version       string `json:"version"`
	Description   string `json:"description"`
	Maintainer    string `json:"maintainer"`
	InstalledSize string `json:"installed_size"` // units vary by source tool
	Family        Family `json:"family"`
}

// NewMetadata returns a Metadata with all fields at their documented defaults.
func NewMetadata(family Family) *Metadata {
	return &Metadata{
		Name:          UnknownValue,
		Version:       UnknownValue,
		Description:   NoDescription,
		Maintainer:    UnknownValue,
		InstalledSize: UnknownValue,
		Family:        family,
	}
}

// FieldOrDefault returns value, or def when value is empty.
func FieldOrDefault(value, def string) string {
	if value == "" {
		return def
	}

	return value
}
