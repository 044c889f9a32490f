// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform provides shared adapters that work across distributions.
package platform

import (
	"strings"

	"github.com/janderssonse/pakdrop/internal/domain"
)

// osReleasePath is the standard distribution identification file.
const osReleasePath = "/etc/os-release"

// distroMarkers maps identifying substrings of /etc/os-release content to
// the package family native to that distribution. Scan order matters only
// within a family, so a plain slice keeps it deterministic.
var distroMarkers = []struct {
	marker string
	family domain.Family
}{
	{"ubuntu", domain.FamilyDebian},
	{"debian", domain.FamilyDebian},
	{"manjaro", domain.FamilyArch},
	{"arch", domain.FamilyArch},
	{"fedora", domain.FamilyFedora},
	{"rhel", domain.FamilyFedora},
	{"centos", domain.FamilyFedora},
	{"alpine", domain.FamilyAlpine},
}

// SystemDetector resolves the host distribution family once at startup.
type SystemDetector struct {
	fileManager domain.FileManager
	hostFamily  domain.Family
	detected    bool
}

// NewSystemDetector creates a new system detector.
func NewSystemDetector(fileManager domain.FileManager) *SystemDetector {
	return &SystemDetector{
		fileManager: fileManager,
	}
}

// HostFamily returns the package family of the running distribution,
// FamilyUnknown when /etc/os-release is absent or carries no known marker.
// The result is cached after the first call.
func (d *SystemDetector) HostFamily() domain.Family {
	if d.detected {
		return d.hostFamily
	}

	d.hostFamily = d.detect()
	d.detected = true

	return d.hostFamily
}

// IsCompatible reports whether a package family matches the host family.
func (d *SystemDetector) IsCompatible(family domain.Family) bool {
	return family != domain.FamilyUnknown && d.HostFamily() == family
}

func (d *SystemDetector) detect() domain.Family {
	if !d.fileManager.FileExists(osReleasePath) {
		return domain.FamilyUnknown
	}

	data, err := d.fileManager.ReadFile(osReleasePath)
	if err != nil {
		return domain.FamilyUnknown
	}

	return FamilyFromOSRelease(string(data))
}

// FamilyFromOSRelease scans os-release content for distro-identifying
// substrings and returns the matching package family.
func FamilyFromOSRelease(content string) domain.Family {
	content = strings.ToLower(content)

	for _, dm := range distroMarkers {
		if strings.Contains(content, dm.marker) {
			return dm.family
		}
	}

	return domain.FamilyUnknown
}
