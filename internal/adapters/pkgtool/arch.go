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

// ArchTool drives pacman for Arch .pkg.tar.xz/.pkg.tar.zst packages.
type ArchTool struct {
	runner    domain.CommandRunner
	icons     *icons.Finder
	translate *i18n.Translator
}

// NewArchTool creates the arch family tool.
func NewArchTool(runner domain.CommandRunner, finder *icons.Finder, translate *i18n.Translator) *ArchTool {
	return &ArchTool{
		runner:    runner,
		icons:     finder,
		translate: translate,
	}
}

// Family returns the arch family tag.
func (t *ArchTool) Family() domain.Family {
	return domain.FamilyArch
}

// ExtractInfo reads the .PKGINFO member directly from the package archive;
// no external tool is needed for inspection.
func (t *ArchTool) ExtractInfo(_ context.Context, path string) (*domain.Metadata, error) {
	data, err := archive.ExtractPKGINFO(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	fields := archive.ParsePKGINFO(data)

	meta := domain.NewMetadata(domain.FamilyArch)
	meta.Name = domain.FieldOrDefault(fields["pkgname"], meta.Name)
	meta.Version = domain.FieldOrDefault(fields["pkgver"], meta.Version)
	meta.Description = domain.FieldOrDefault(fields["pkgdesc"], meta.Description)
	meta.Maintainer = domain.FieldOrDefault(fields["packager"], meta.Maintainer)
	meta.InstalledSize = domain.FieldOrDefault(fields["size"], meta.InstalledSize)

	return meta, nil
}

// IsInstalled checks `pacman -Q <name>`, which exits non-zero for unknown
// packages.
func (t *ArchTool) IsInstalled(ctx context.Context, name string) (bool, string) {
	return installedStatus(t.translate, t.InstalledVersion(ctx, name))
}

// InstalledVersion parses the "name version" output of pacman -Q.
func (t *ArchTool) InstalledVersion(ctx context.Context, name string) string {
	output, err := t.runner.ExecuteWithOutput(ctx, "pacman", "-Q", name)
	if err != nil {
		return ""
	}

	parts := strings.Fields(strings.TrimSpace(output))
	if len(parts) >= 2 {
		return parts[1]
	}

	return ""
}

// FindIcon delegates to the shared freedesktop icon lookup.
func (t *ArchTool) FindIcon(name string) string {
	return t.icons.Find(name)
}

// InstallCommand returns the privileged pacman install argv.
func (t *ArchTool) InstallCommand(path string) []string {
	return []string{privilegeHelper, "pacman", "-U", path, "--noconfirm"}
}

// RequiredTools lists the executables installation needs.
func (t *ArchTool) RequiredTools() []string {
	return []string{"pacman", privilegeHelper}
}
