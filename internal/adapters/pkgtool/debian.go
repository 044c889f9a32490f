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

// DebianTool drives dpkg for .deb packages.
type DebianTool struct {
	runner    domain.CommandRunner
	icons     *icons.Finder
	translate *i18n.Translator
}

// NewDebianTool creates the debian family tool.
func NewDebianTool(runner domain.CommandRunner, finder *icons.Finder, translate *i18n.Translator) *DebianTool {
	return &DebianTool{
		runner:    runner,
		icons:     finder,
		translate: translate,
	}
}

// Family returns the debian family tag.
func (t *DebianTool) Family() domain.Family {
	return domain.FamilyDebian
}

// ExtractInfo reads package metadata via `dpkg -I`, or straight from the
// archive's control member when dpkg is not on this system.
func (t *DebianTool) ExtractInfo(ctx context.Context, path string) (*domain.Metadata, error) {
	var fields map[string]string

	if t.runner.CommandExists("dpkg") {
		output, err := t.runner.ExecuteWithOutput(ctx, "dpkg", "-I", path)
		if err != nil {
			return nil, fmt.Errorf("%w: dpkg -I: %v", domain.ErrExtractionFailed, err)
		}

		fields = parseColonFields(output)
	} else {
		control, err := archive.ExtractDebControl(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
		}

		fields = control
	}

	meta := domain.NewMetadata(domain.FamilyDebian)
	meta.Name = domain.FieldOrDefault(fields["package"], meta.Name)
	meta.Version = domain.FieldOrDefault(fields["version"], meta.Version)
	meta.Description = domain.FieldOrDefault(fields["description"], meta.Description)
	meta.Maintainer = domain.FieldOrDefault(fields["maintainer"], meta.Maintainer)
	meta.InstalledSize = domain.FieldOrDefault(fields["installed-size"], meta.InstalledSize)

	return meta, nil
}

// IsInstalled checks `dpkg -l` for an "ii" line naming the package.
func (t *DebianTool) IsInstalled(ctx context.Context, name string) (bool, string) {
	return installedStatus(t.translate, t.InstalledVersion(ctx, name))
}

// InstalledVersion extracts the version column of the matching "ii" line.
func (t *DebianTool) InstalledVersion(ctx context.Context, name string) string {
	output, err := t.runner.ExecuteWithOutput(ctx, "dpkg", "-l", name)
	if err != nil {
		return ""
	}

	for line := range strings.SplitSeq(output, "\n") {
		if !strings.HasPrefix(line, "ii") || !strings.Contains(line, name) {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) >= 3 {
			return parts[2]
		}
	}

	return ""
}

// FindIcon delegates to the shared freedesktop icon lookup.
func (t *DebianTool) FindIcon(name string) string {
	return t.icons.Find(name)
}

// InstallCommand returns the privileged dpkg install argv.
func (t *DebianTool) InstallCommand(path string) []string {
	return []string{privilegeHelper, "dpkg", "-i", path}
}

// RequiredTools lists the executables installation needs.
func (t *DebianTool) RequiredTools() []string {
	return []string{"dpkg", privilegeHelper}
}
