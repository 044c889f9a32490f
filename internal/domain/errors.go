// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "errors"

// Common domain errors. All detection and installed-state failures degrade
// to default values or a false result; only these sentinels surface to
// callers, and none of them is ever fatal to the application.
var (
	// ErrUnsupportedType indicates the file does not belong to a supported package family.
	ErrUnsupportedType = errors.New("unsupported package type")
	// ErrExtractionFailed indicates package metadata could not be extracted.
	ErrExtractionFailed = errors.New("failed to extract package information")
	// ErrDependencyMissing indicates required system tools are not on the search path.
	ErrDependencyMissing = errors.New("missing required tools")
)
