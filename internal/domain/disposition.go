// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

// Disposition describes how a package file relates to the installed system
// state. It is derived, never stored, and recomputed whenever metadata
// changes or an installation completes.
type Disposition string

// Possible dispositions for a selected package file.
const (
	DispositionNotInstalled   Disposition = "not-installed"
	DispositionSameVersion    Disposition = "same-version"
	DispositionPackageNewer   Disposition = "package-newer"
	DispositionInstalledNewer Disposition = "installed-newer"
)

// Decide derives the disposition from the package version and the currently
// installed version. An empty installedVersion means the package is not
// installed.
func Decide(packageVersion, installedVersion string) Disposition {
	if installedVersion == "" {
		return DispositionNotInstalled
	}

	switch CompareVersions(packageVersion, installedVersion) {
	case 1:
		return DispositionPackageNewer
	case -1:
		return DispositionInstalledNewer
	default:
		return DispositionSameVersion
	}
}
