// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package platform_test

import (
	"testing"

	"github.com/janderssonse/pakdrop/internal/adapters/platform"
	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFamilyFromOSRelease(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected domain.Family
	}{
		{
			name:     "ubuntu",
			content:  "NAME=\"Ubuntu\"\nID=ubuntu\nID_LIKE=debian\nVERSION_ID=\"24.04\"\n",
			expected: domain.FamilyDebian,
		},
		{
			name:     "debian",
			content:  "PRETTY_NAME=\"Debian GNU/Linux 12 (bookworm)\"\nID=debian\n",
			expected: domain.FamilyDebian,
		},
		{
			name:     "arch",
			content:  "NAME=\"Arch Linux\"\nID=arch\nBUILD_ID=rolling\n",
			expected: domain.FamilyArch,
		},
		{
			name:     "manjaro",
			content:  "NAME=\"Manjaro Linux\"\nID=manjaro\n",
			expected: domain.FamilyArch,
		},
		{
			name:     "fedora",
			content:  "NAME=\"Fedora Linux\"\nID=fedora\nVERSION_ID=42\n",
			expected: domain.FamilyFedora,
		},
		{
			name:     "centos",
			content:  "NAME=\"CentOS Stream\"\nID=\"centos\"\n",
			expected: domain.FamilyFedora,
		},
		{
			name:     "alpine",
			content:  "NAME=\"Alpine Linux\"\nID=alpine\nVERSION_ID=3.20.1\n",
			expected: domain.FamilyAlpine,
		},
		{
			name:     "unrecognized",
			content:  "NAME=\"Gentoo\"\nID=gentoo\n",
			expected: domain.FamilyUnknown,
		},
		{
			name:     "empty",
			content:  "",
			expected: domain.FamilyUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, platform.FamilyFromOSRelease(tt.content))
		})
	}
}

func TestHostFamilyMissingOSRelease(t *testing.T) {
	t.Parallel()

	detector := platform.NewSystemDetector(platform.NewMockFileManager(false))

	assert.Equal(t, domain.FamilyUnknown, detector.HostFamily())
	assert.False(t, detector.IsCompatible(domain.FamilyDebian))
	assert.False(t, detector.IsCompatible(domain.FamilyUnknown))
}

func TestHostFamilyFromMockFile(t *testing.T) {
	t.Parallel()

	files := platform.NewMockFileManager(false)
	files.SetMockFile("/etc/os-release", []byte("ID=ubuntu\nID_LIKE=debian\n"))

	detector := platform.NewSystemDetector(files)

	assert.Equal(t, domain.FamilyDebian, detector.HostFamily())
	assert.True(t, detector.IsCompatible(domain.FamilyDebian))
	assert.False(t, detector.IsCompatible(domain.FamilyArch))
}
