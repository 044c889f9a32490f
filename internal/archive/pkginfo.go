// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package archive reads control metadata straight out of package archives,
// so inspection works even when the foreign package tool is not installed.
package archive

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// ErrNoControlFile indicates the archive carries no recognizable control file.
var ErrNoControlFile = errors.New("no control file found in archive")

// ExtractPKGINFO reads the .PKGINFO member from an Arch or Alpine package.
// The decompressor is chosen from the file suffix: zst and xz for Arch,
// gzip for Alpine .apk, plain tar accepted as a last resort.
func ExtractPKGINFO(path string) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 - path is the user-selected package file
	if err != nil {
		return nil, fmt.Errorf("failed to open package: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader, closeReader, err := decompressor(f, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	defer closeReader()

	return findTarMember(tar.NewReader(reader), ".PKGINFO")
}

// ParsePKGINFO parses "key = value" lines into a map. Comment lines and
// repeated keys keep the first value, matching how pacman reads it.
func ParsePKGINFO(data []byte) map[string]string {
	fields := make(map[string]string)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		if _, seen := fields[key]; !seen {
			fields[key] = strings.TrimSpace(value)
		}
	}

	return fields
}

func decompressor(f io.Reader, name string) (io.Reader, func(), error) {
	noop := func() {}

	switch {
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open zstd stream: %w", err)
		}

		return zr, zr.Close, nil
	case strings.HasSuffix(name, ".xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open xz stream: %w", err)
		}

		return xr, noop, nil
	case strings.HasSuffix(name, ".gz"), strings.HasSuffix(name, ".apk"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open gzip stream: %w", err)
		}

		return gr, func() { _ = gr.Close() }, nil
	default:
		return f, noop, nil
	}
}

func findTarMember(tr *tar.Reader, name string) ([]byte, error) {
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read archive: %w", err)
		}

		if filepath.Clean(header.Name) == name {
			data, err := io.ReadAll(tr)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", name, err)
			}

			return data, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNoControlFile, name)
}
