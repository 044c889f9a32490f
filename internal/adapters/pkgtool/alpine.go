// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package pkgtool

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/janderssonse/pakdrop/internal/archive"
	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/janderssonse/pakdrop/internal/i18n"
	"github.com/janderssonse/pakdrop/internal/icons"
)

// AlpineTool drives apk for Alpine .apk packages.
//
// Alpine has no reliable structured inspect command for a package file, so
// extraction reads the archive's .PKGINFO and degrades to a name derived
// from the file name. It never fails: absence of data becomes default
// strings.
type AlpineTool struct {
	runner    domain.CommandRunner
	icons     *icons.Finder
	translate *i18n.Translator
}

// NewAlpineTool creates the alpine family tool.
func NewAlpineTool(runner domain.CommandRunner, finder *icons.Finder, translate *i18n.Translator) *AlpineTool {
	return &AlpineTool{
		runner:    runner,
		icons:     finder,
		translate: translate,
	}
}

// Family returns the alpine family tag.
func (t *AlpineTool) Family() domain.Family {
	return domain.FamilyAlpine
}

// ExtractInfo reads .PKGINFO from the gzipped archive when possible and
// otherwise falls back to the base file name; the error is always nil.
func (t *AlpineTool) ExtractInfo(_ context.Context, path string) (*domain.Metadata, error) {
	meta := domain.NewMetadata(domain.FamilyAlpine)
	meta.Maintainer = "Alpine Linux"

	if data, err := archive.ExtractPKGINFO(path); err == nil {
		fields := archive.ParsePKGINFO(data)
		meta.Name = domain.FieldOrDefault(fields["pkgname"], meta.Name)
		meta.Version = domain.FieldOrDefault(fields["pkgver"], meta.Version)
		meta.Description = domain.FieldOrDefault(fields["pkgdesc"], meta.Description)
		meta.Maintainer = domain.FieldOrDefault(fields["maintainer"], meta.Maintainer)
		meta.InstalledSize = domain.FieldOrDefault(fields["size"], meta.InstalledSize)
	}

	if meta.Name == domain.UnknownValue {
		meta.Name = nameFromFile(path)
	}

	return meta, nil
}

// nameFromFile derives a package name from the base file name: the text
// before the first hyphen, or the whole stem when there is none.
func nameFromFile(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if name, _, found := strings.Cut(stem, "-"); found && name != "" {
		return name
	}

	if stem == "" {
		return domain.UnknownValue
	}

	return stem
}

// IsInstalled checks `apk info -e <name>`, which prints the name only when
// the package is installed.
func (t *AlpineTool) IsInstalled(ctx context.Context, name string) (bool, string) {
	output, err := t.runner.ExecuteWithOutput(ctx, "apk", "info", "-e", name)
	if err != nil || strings.TrimSpace(output) == "" {
		return installedStatus(t.translate, "")
	}

	return true, t.translate.GetWith("installed_version",
		i18n.Params{"version": t.InstalledVersion(ctx, name)})
}

// InstalledVersion scans `apk info <name>` output for a version line, or
// the "name-version" description header.
func (t *AlpineTool) InstalledVersion(ctx context.Context, name string) string {
	output, err := t.runner.ExecuteWithOutput(ctx, "apk", "info", name)
	if err != nil {
		return ""
	}

	for line := range strings.SplitSeq(output, "\n") {
		line = strings.TrimSpace(line)

		if idx := strings.Index(strings.ToLower(line), "version:"); idx >= 0 {
			return strings.TrimSpace(line[idx+len("version:"):])
		}

		if strings.HasPrefix(line, name+"-") {
			return strings.TrimPrefix(strings.Fields(line)[0], name+"-")
		}
	}

	return ""
}

// FindIcon delegates to the shared freedesktop icon lookup.
func (t *AlpineTool) FindIcon(name string) string {
	return t.icons.Find(name)
}

// InstallCommand returns the privileged apk install argv.
func (t *AlpineTool) InstallCommand(path string) []string {
	return []string{privilegeHelper, "apk", "add", "--allow-untrusted", path}
}

// RequiredTools lists the executables installation needs.
func (t *AlpineTool) RequiredTools() []string {
	return []string{"apk", privilegeHelper}
}
