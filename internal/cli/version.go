// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

// Version is stamped at build time via -ldflags.
var Version = "dev"
