// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package pkgtool

import (
	"context"
	"fmt"
	"strings"

	"github.com/janderssonse/pakdrop/internal/archive"
	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/janderssonse/pakdrop/internal/i18n"
	"github.com/janderssonse/pakdrop/internal/icons"
)

// FedoraTool drives rpm for .rpm packages.
type FedoraTool struct {
	runner    domain.CommandRunner
	icons     *icons.Finder
	translate *i18n.Translator
}

// NewFedoraTool creates the fedora family tool.
func NewFedoraTool(runner domain.CommandRunner, finder *icons.Finder, translate *i18n.Translator) *FedoraTool {
	return &FedoraTool{
		runner:    runner,
		icons:     finder,
		translate: translate,
	}
}

// Family returns the fedora family tag.
func (t *FedoraTool) Family() domain.Family {
	return domain.FamilyFedora
}

// ExtractInfo reads package metadata via `rpm -qip`, or straight from the
// RPM header when rpm is not on this system.
func (t *FedoraTool) ExtractInfo(ctx context.Context, path string) (*domain.Metadata, error) {
	var fields map[string]string

	if t.runner.CommandExists("rpm") {
		output, err := t.runner.ExecuteWithOutput(ctx, "rpm", "-qip", path)
		if err != nil {
			return nil, fmt.Errorf("%w: rpm -qip: %v", domain.ErrExtractionFailed, err)
		}

		fields = parseColonFields(output)
	} else {
		header, err := archive.ExtractRPMHeader(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
		}

		fields = header
	}

	meta := domain.NewMetadata(domain.FamilyFedora)
	meta.Name = domain.FieldOrDefault(fields["name"], meta.Name)
	meta.Version = domain.FieldOrDefault(fields["version"], meta.Version)
	meta.Description = domain.FieldOrDefault(fields["summary"], meta.Description)
	meta.Maintainer = domain.FieldOrDefault(fields["vendor"], meta.Maintainer)
	meta.InstalledSize = domain.FieldOrDefault(fields["size"], meta.InstalledSize)

	return meta, nil
}

// IsInstalled checks `rpm -q <name>`; the command prints "package ... is
// not installed" and exits non-zero for unknown packages.
func (t *FedoraTool) IsInstalled(ctx context.Context, name string) (bool, string) {
	output, err := t.runner.ExecuteWithOutput(ctx, "rpm", "-q", name)
	if err != nil {
		return installedStatus(t.translate, "")
	}

	installed := strings.TrimSpace(output)
	if installed == "" || strings.HasPrefix(installed, "package") {
		return installedStatus(t.translate, "")
	}

	return installedStatus(t.translate, installed)
}

// InstalledVersion queries version-release through rpm's query format.
func (t *FedoraTool) InstalledVersion(ctx context.Context, name string) string {
	output, err := t.runner.ExecuteWithOutput(ctx,
		"rpm", "-q", "--queryformat", "%{VERSION}-%{RELEASE}", name)
	if err != nil {
		return ""
	}

	version := strings.TrimSpace(output)
	if version == "" || strings.HasPrefix(version, "package") {
		return ""
	}

	return version
}

// FindIcon delegates to the shared freedesktop icon lookup.
func (t *FedoraTool) FindIcon(name string) string {
	return t.icons.Find(name)
}

// InstallCommand returns the privileged rpm install argv.
func (t *FedoraTool) InstallCommand(path string) []string {
	return []string{privilegeHelper, "rpm", "-i", path}
}

// RequiredTools lists the executables installation needs.
func (t *FedoraTool) RequiredTools() []string {
	return []string{"rpm", privilegeHelper}
}
