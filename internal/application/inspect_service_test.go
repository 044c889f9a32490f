// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package application_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/janderssonse/pakdrop/internal/adapters/pkgtool"
	"github.com/janderssonse/pakdrop/internal/adapters/platform"
	"github.com/janderssonse/pakdrop/internal/application"
	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/janderssonse/pakdrop/internal/i18n"
	"github.com/janderssonse/pakdrop/internal/icons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dpkgInfoOutput = ` new Debian package, version 2.0.
 Package: hello
 Version: 2.10-3
 Maintainer: Jane Doe <jane@example.org>
 Installed-Size: 280
 Description: example greeter
`

func writePackageFile(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0o600))

	return path
}

func newService(runner *platform.MockCommandRunner, files *platform.MockFileManager) *application.InspectService {
	registry := pkgtool.NewRegistry(runner, icons.NewFinder(files), i18n.New("en"))
	detector := platform.NewSystemDetector(files)

	return application.NewInspectService(registry, detector)
}

func TestInspectNotInstalledPackage(t *testing.T) {
	t.Parallel()

	path := writePackageFile(t, "hello.deb")

	runner := platform.NewMockCommandRunner(false)
	runner.SetMockOutput("dpkg -I "+path, dpkgInfoOutput)
	runner.SetMockFailure("dpkg -l hello", os.ErrNotExist)

	files := platform.NewMockFileManager(false)
	files.SetMockFile("/etc/os-release", []byte("ID=ubuntu\nID_LIKE=debian\n"))

	result, err := newService(runner, files).Inspect(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "hello", result.Metadata.Name)
	assert.Equal(t, "2.10-3", result.Metadata.Version)
	assert.True(t, result.Compatible)
	assert.Equal(t, domain.FamilyDebian, result.HostFamily)
	assert.False(t, result.Installed)
	assert.Equal(t, domain.DispositionNotInstalled, result.Disposition)
}

func TestInspectInstalledOlderVersion(t *testing.T) {
	t.Parallel()

	path := writePackageFile(t, "hello.deb")

	runner := platform.NewMockCommandRunner(false)
	runner.SetMockOutput("dpkg -I "+path, dpkgInfoOutput)
	runner.SetMockOutput("dpkg -l hello",
		"ii  hello  2.9-1  amd64  example greeter\n")

	files := platform.NewMockFileManager(false)
	files.SetMockFile("/etc/os-release", []byte("ID=debian\n"))

	result, err := newService(runner, files).Inspect(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, result.Installed)
	assert.Equal(t, "2.9-1", result.InstalledVersion)
	assert.Equal(t, domain.DispositionPackageNewer, result.Disposition)
	assert.Equal(t, "action_update", application.SuggestedAction(result.Disposition))
}

func TestInspectIncompatibleHost(t *testing.T) {
	t.Parallel()

	path := writePackageFile(t, "hello.deb")

	runner := platform.NewMockCommandRunner(false)
	runner.SetMockOutput("dpkg -I "+path, dpkgInfoOutput)
	runner.SetMockFailure("dpkg -l hello", os.ErrNotExist)

	files := platform.NewMockFileManager(false)
	files.SetMockFile("/etc/os-release", []byte("ID=fedora\n"))

	result, err := newService(runner, files).Inspect(context.Background(), path)
	require.NoError(t, err)

	assert.False(t, result.Compatible)
	assert.Equal(t, domain.FamilyFedora, result.HostFamily)
}

func TestInspectMissingFile(t *testing.T) {
	t.Parallel()

	service := newService(platform.NewMockCommandRunner(false), platform.NewMockFileManager(false))

	_, err := service.Inspect(context.Background(), "/nonexistent/hello.deb")
	require.ErrorIs(t, err, application.ErrFileNotFound)
}

func TestInspectUnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := writePackageFile(t, "archive.tar.gz")
	service := newService(platform.NewMockCommandRunner(false), platform.NewMockFileManager(false))

	_, err := service.Inspect(context.Background(), path)
	require.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestSuggestedAction(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "action_install", application.SuggestedAction(domain.DispositionNotInstalled))
	assert.Equal(t, "action_reinstall", application.SuggestedAction(domain.DispositionSameVersion))
	assert.Equal(t, "action_downgrade", application.SuggestedAction(domain.DispositionInstalledNewer))
}
