// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blakesmith/ar"
	"github.com/julien-sobczak/deb822"
)

// ExtractDebControl pulls the control paragraph out of a .deb archive
// without dpkg: the outer ar archive holds a control.tar member whose
// compression varies by builder (gz, xz, zst or none).
func ExtractDebControl(path string) (map[string]string, error) {
	f, err := os.Open(path) // #nosec G304 - path is the user-selected package file
	if err != nil {
		return nil, fmt.Errorf("failed to open package: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := ar.NewReader(f)

	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read ar archive: %w", err)
		}

		name := strings.TrimSuffix(strings.TrimSpace(header.Name), "/")
		if !strings.HasPrefix(name, "control.tar") {
			continue
		}

		tarStream, closeStream, err := decompressor(reader, name)
		if err != nil {
			return nil, err
		}

		defer closeStream()

		control, err := findTarMember(tar.NewReader(tarStream), "control")
		if err != nil {
			return nil, err
		}

		return parseControl(string(control))
	}

	return nil, fmt.Errorf("%w: control.tar", ErrNoControlFile)
}

// parseControl reads the debian control paragraph into a map with
// lowercased field names.
func parseControl(content string) (map[string]string, error) {
	parser, err := deb822.NewParser(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse control file: %w", err)
	}

	document, err := parser.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse control file: %w", err)
	}

	if len(document.Paragraphs) == 0 {
		return nil, fmt.Errorf("%w: empty control file", ErrNoControlFile)
	}

	paragraph := document.Paragraphs[0]
	fields := make(map[string]string, len(paragraph.Order))

	for _, field := range paragraph.Order {
		fields[strings.ToLower(field)] = strings.TrimSpace(paragraph.Value(field))
	}

	return fields, nil
}
