// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package archive

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sassoftware/go-rpmutils"
)

// ExtractRPMHeader reads package metadata straight from an RPM header,
// keyed with the same lowercased field names `rpm -qip` prints so callers
// share one mapping path.
func ExtractRPMHeader(path string) (map[string]string, error) {
	f, err := os.Open(path) // #nosec G304 - path is the user-selected package file
	if err != nil {
		return nil, fmt.Errorf("failed to open package: %w", err)
	}
	defer func() { _ = f.Close() }()

	rpm, err := rpmutils.ReadRpm(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read rpm header: %w", err)
	}

	fields := map[string]string{
		"name":    headerString(rpm, rpmutils.NAME),
		"version": headerString(rpm, rpmutils.VERSION),
		"release": headerString(rpm, rpmutils.RELEASE),
		"summary": headerString(rpm, rpmutils.SUMMARY),
		"vendor":  headerString(rpm, rpmutils.VENDOR),
	}

	if size, err := rpm.Header.InstalledSize(); err == nil {
		fields["size"] = strconv.FormatInt(size, 10)
	}

	return fields, nil
}

func headerString(rpm *rpmutils.Rpm, tag int) string {
	value, err := rpm.Header.Get(tag)
	if err != nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}

	return ""
}
