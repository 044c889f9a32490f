// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package domain_test

import (
	"testing"

	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCompareVersions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{"trailing zero equal", "1.2.0", "1.2", 0},
		{"major beats minor", "2.0", "1.9.9", 1},
		{"patch ordering", "1.0", "1.0.1", -1},
		{"both empty", "", "", 0},
		{"non-numeric normalizes to zero", "abc", "1.0", -1},
		{"non-numeric against zero", "abc", "0", 0},
		{"identical", "3.4.5", "3.4.5", 0},
		{"epoch-style noise stripped", "1:2.0-3ubuntu1", "12.31", 0},
		{"release suffix", "1.0-r0", "1.0", 0},
		{"longer wins", "1.0.0.1", "1.0", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, domain.CompareVersions(tt.a, tt.b))
		})
	}
}

// CompareVersions is total: no input may panic, and comparison is
// antisymmetric for the documented cases.
func TestCompareVersionsTotality(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "abc", "...", "1..2", "v1.2.3", "1.2.3-rc1", "0.0.0", "9999999999"}

	for _, a := range inputs {
		for _, b := range inputs {
			got := domain.CompareVersions(a, b)
			assert.Contains(t, []int{-1, 0, 1}, got)
			assert.Equal(t, -got, domain.CompareVersions(b, a))
		}
	}
}
