// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package pkgtool implements the per-family package tool strategies.
// Each family gets one object satisfying domain.FamilyTool; the registry
// is the only dispatch point, so adding a family is additive.
package pkgtool

import (
	"context"
	"fmt"
	"strings"

	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/janderssonse/pakdrop/internal/i18n"
	"github.com/janderssonse/pakdrop/internal/icons"
)

// privilegeHelper escalates the install commands of every family.
const privilegeHelper = "pkexec"

// Registry resolves the FamilyTool for a package family.
type Registry struct {
	tools map[domain.Family]domain.FamilyTool
}

// NewRegistry creates a registry with all four family tools wired to the
// given command runner, icon finder and translator.
func NewRegistry(runner domain.CommandRunner, finder *icons.Finder, translate *i18n.Translator) *Registry {
	registry := &Registry{
		tools: make(map[domain.Family]domain.FamilyTool),
	}

	for _, tool := range []domain.FamilyTool{
		NewDebianTool(runner, finder, translate),
		NewArchTool(runner, finder, translate),
		NewFedoraTool(runner, finder, translate),
		NewAlpineTool(runner, finder, translate),
	} {
		registry.tools[tool.Family()] = tool
	}

	return registry
}

// For returns the tool serving the given family.
func (r *Registry) For(family domain.Family) (domain.FamilyTool, error) {
	tool, ok := r.tools[family]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, family)
	}

	return tool, nil
}

// ExtractInfo classifies the file by suffix and extracts its metadata.
// Unclassifiable files are rejected before any family parser runs.
func (r *Registry) ExtractInfo(ctx context.Context, path string) (*domain.Metadata, error) {
	family := domain.ClassifyPath(path)
	if family == domain.FamilyUnknown {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, path)
	}

	tool, err := r.For(family)
	if err != nil {
		return nil, err
	}

	return tool.ExtractInfo(ctx, path)
}

// installedStatus renders the shared installed-state verdict from a
// resolved version string; empty means not installed.
func installedStatus(translate *i18n.Translator, version string) (bool, string) {
	if version == "" {
		return false, translate.Get("package_not_installed_status")
	}

	return true, translate.GetWith("installed_version", i18n.Params{"version": version})
}

// parseColonFields parses line-oriented "Key: value" output into a map
// with lowercased keys, the shared shape of dpkg -I and rpm -qip output.
func parseColonFields(output string) map[string]string {
	fields := make(map[string]string)

	for line := range strings.SplitSeq(output, "\n") {
		line = strings.TrimSpace(line)

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		fields[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	return fields
}
