// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package icons locates application icons for installed packages. All
// package families share the same freedesktop conventions, so one lookup
// serves them all.
package icons

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"

	"github.com/janderssonse/pakdrop/internal/domain"
)

// iconDirs are checked in order; the first existing file wins.
var iconDirs = []string{
	"usr/share/pixmaps/%s.png",
	"usr/share/pixmaps/%s.xpm",
	"usr/share/pixmaps/%s.svg",
	"usr/share/icons/hicolor/48x48/apps/%s.png",
	"usr/share/icons/hicolor/64x64/apps/%s.png",
	"usr/share/icons/hicolor/scalable/apps/%s.svg",
}

var desktopDirs = []string{
	"usr/share/applications/%s.desktop",
	"usr/local/share/applications/%s.desktop",
}

// Finder locates icons under a filesystem root, "/" for the real system.
type Finder struct {
	root        string
	fileManager domain.FileManager
}

// NewFinder creates a finder over the system root.
func NewFinder(fileManager domain.FileManager) *Finder {
	return NewFinderAt("/", fileManager)
}

// NewFinderAt creates a finder rooted at an arbitrary directory, used by tests.
func NewFinderAt(root string, fileManager domain.FileManager) *Finder {
	return &Finder{
		root:        root,
		fileManager: fileManager,
	}
}

// Find returns an icon file path or bare theme name for the named package,
// or "" when nothing is found. Conventional icon locations are checked
// first; .desktop entries are the fallback.
func (f *Finder) Find(name string) string {
	if name == "" || name == domain.UnknownValue {
		return ""
	}

	for _, pattern := range iconDirs {
		path := filepath.Join(f.root, strings.ReplaceAll(pattern, "%s", name))
		if f.fileManager.FileExists(path) {
			return path
		}
	}

	for _, pattern := range desktopDirs {
		path := filepath.Join(f.root, strings.ReplaceAll(pattern, "%s", name))
		if !f.fileManager.FileExists(path) {
			continue
		}

		if icon := f.iconFromDesktopFile(path); icon != "" {
			return icon
		}
	}

	return ""
}

// iconFromDesktopFile extracts the Icon= value from a .desktop file.
// An absolute path must exist to be returned; a bare theme name is
// returned unconditionally.
func (f *Finder) iconFromDesktopFile(path string) string {
	data, err := f.fileManager.ReadFile(path)
	if err != nil {
		return ""
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		icon, found := strings.CutPrefix(line, "Icon=")
		if !found {
			continue
		}

		icon = strings.TrimSpace(icon)
		if icon == "" {
			return ""
		}

		if strings.HasPrefix(icon, "/") {
			if f.fileManager.FileExists(icon) {
				return icon
			}

			return ""
		}

		return icon
	}

	return ""
}
