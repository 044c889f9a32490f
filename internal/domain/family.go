// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package domain holds the core package-file model shared by every adapter.
package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Family identifies which package manager a package file belongs to.
type Family string

// Supported package families.
const (
	FamilyUnknown Family = ""
	FamilyDebian  Family = "debian"
	FamilyArch    Family = "arch"
	FamilyFedora  Family = "fedora"
	FamilyAlpine  Family = "alpine"
)

// compositeSuffixes are matched before single extensions so that an Arch
// package never classifies by its ".xz" or ".zst" tail.
var compositeSuffixes = []struct {
	suffix string
	family Family
}{
	{".pkg.tar.xz", FamilyArch},
	{".pkg.tar.zst", FamilyArch},
}

var simpleExtensions = map[string]Family{
	".deb": FamilyDebian,
	".rpm": FamilyFedora,
	".apk": FamilyAlpine,
}

// ClassifyPath maps a file path to its package family by suffix.
// Returns FamilyUnknown when nothing matches; classification never needs
// to open the file.
func ClassifyPath(path string) Family {
	name := strings.ToLower(filepath.Base(path))

	for _, cs := range compositeSuffixes {
		if strings.HasSuffix(name, cs.suffix) {
			return cs.family
		}
	}

	if family, ok := simpleExtensions[filepath.Ext(name)]; ok {
		return family
	}

	return FamilyUnknown
}

// ParseFamily converts a user-supplied family name to a Family.
func ParseFamily(s string) (Family, error) {
	switch Family(strings.ToLower(strings.TrimSpace(s))) {
	case FamilyDebian:
		return FamilyDebian, nil
	case FamilyArch:
		return FamilyArch, nil
	case FamilyFedora:
		return FamilyFedora, nil
	case FamilyAlpine:
		return FamilyAlpine, nil
	default:
		return FamilyUnknown, fmt.Errorf("%w: %q", ErrUnsupportedType, s)
	}
}

// String returns the family name, or "unknown" for the zero value.
func (f Family) String() string {
	if f == FamilyUnknown {
		return "unknown"
	}

	return string(f)
}

// Families lists all supported families in display order.
func Families() []Family {
	return []Family{FamilyDebian, FamilyArch, FamilyFedora, FamilyAlpine}
}
