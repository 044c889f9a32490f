// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package application coordinates the domain ports behind each user-facing
// operation.
package application

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/janderssonse/pakdrop/internal/domain"
)

// ErrFileNotFound is returned when the package file does not exist.
var ErrFileNotFound = errors.New("package file not found")

// ToolRegistry resolves the per-family tool for a package file.
type ToolRegistry interface {
	For(family domain.Family) (domain.FamilyTool, error)
	ExtractInfo(ctx context.Context, path string) (*domain.Metadata, error)
}

// HostDetector reports the package family of the running system.
type HostDetector interface {
	HostFamily() domain.Family
	IsCompatible(family domain.Family) bool
}

// InspectService assembles the full picture for one package file: metadata,
// host compatibility, installed state and the resulting disposition.
type InspectService struct {
	registry ToolRegistry
	detector HostDetector
}

// NewInspectService creates an inspect service.
func NewInspectService(registry ToolRegistry, detector HostDetector) *InspectService {
	return &InspectService{
		registry: registry,
		detector: detector,
	}
}

// Inspect reads a package file and derives everything the presentation
// layer shows about it. Extraction failures surface as errors; a package
// that merely is not installed is a normal result.
func (s *InspectService) Inspect(ctx context.Context, path string) (*domain.InspectResult, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	family := domain.ClassifyPath(path)
	if family == domain.FamilyUnknown {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, path)
	}

	metadata, err := s.registry.ExtractInfo(ctx, path)
	if err != nil {
		return nil, err
	}

	result := &domain.InspectResult{
		Path:        path,
		Metadata:    metadata,
		HostFamily:  s.detector.HostFamily(),
		Compatible:  s.detector.IsCompatible(family),
		Disposition: domain.DispositionNotInstalled,
	}

	tool, err := s.registry.For(family)
	if err != nil {
		return nil, err
	}

	// A package whose name could not be read cannot be matched against
	// the installed database.
	if metadata.Name != domain.UnknownValue {
		result.Installed, _ = tool.IsInstalled(ctx, metadata.Name)
		if result.Installed {
			result.InstalledVersion = tool.InstalledVersion(ctx, metadata.Name)
		}

		switch {
		case result.Installed && result.InstalledVersion == "":
			// Installed but the version is unreadable: treat as the same
			// version so the action offered is a reinstall.
			result.Disposition = domain.DispositionSameVersion
		default:
			result.Disposition = domain.Decide(metadata.Version, result.InstalledVersion)
		}
		result.IconPath = tool.FindIcon(metadata.Name)
	}

	return result, nil
}

// SuggestedAction maps a disposition to the action label key shown on the
// install control.
func SuggestedAction(disposition domain.Disposition) string {
	switch disposition {
	case domain.DispositionPackageNewer:
		return "action_update"
	case domain.DispositionInstalledNewer:
		return "action_downgrade"
	case domain.DispositionSameVersion:
		return "action_reinstall"
	default:
		return "action_install"
	}
}
