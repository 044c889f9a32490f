// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// CompareVersions compares two version strings component-wise and returns
// -1, 0 or 1. Each string is normalized by stripping everything except
// digits and dots, splitting on dots and coercing each component to an
// integer; the shorter sequence is right-padded with zeros. The function
// is total: malformed or empty strings normalize to an all-zero sequence
// and compare equal to any other all-zero sequence.
func CompareVersions(a, b string) int {
	va := normalizeVersion(a)
	vb := normalizeVersion(b)

	for len(va) < len(vb) {
		va = append(va, 0)
	}

	for len(vb) < len(va) {
		vb = append(vb, 0)
	}

	for i := range va {
		switch {
		case va[i] < vb[i]:
			return -1
		case va[i] > vb[i]:
			return 1
		}
	}

	return 0
}

// normalizeVersion reduces a version string to its numeric components.
// Components without any digits are dropped.
func normalizeVersion(version string) []int {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '.' {
			return r
		}

		return -1
	}, version)

	var components []int

	for part := range strings.SplitSeq(cleaned, ".") {
		digits := leadingDigits(part)
		if digits == "" {
			continue
		}

		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}

		components = append(components, n)
	}

	return components
}

func leadingDigits(s string) string {
	for i, r := range s {
		if !unicode.IsDigit(r) {
			return s[:i]
		}
	}

	return s
}
