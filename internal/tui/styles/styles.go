// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package styles defines consistent visual styling for TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the TUI.
type Styles struct {
	// Color palette
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
	Muted   lipgloss.Color

	// Component styles
	Header lipgloss.Style
	Footer lipgloss.Style
	Title  lipgloss.Style
	Card   lipgloss.Style
	Label  lipgloss.Style

	// Text styles (cached for performance)
	MutedText   lipgloss.Style
	SuccessText lipgloss.Style
	ErrorText   lipgloss.Style
	WarningText lipgloss.Style
	InfoText    lipgloss.Style
}

// New creates a new Styles instance with the default Tokyo Night theme.
func New() *Styles {
	// Tokyo Night color palette
	primary := lipgloss.Color("#7aa2f7")    // Blue
	success := lipgloss.Color("#9ece6a")    // Green
	warning := lipgloss.Color("#e0af68")    // Yellow
	errorColor := lipgloss.Color("#f7768e") // Red
	info := lipgloss.Color("#7dcfff")       // Cyan
	muted := lipgloss.Color("#565f89")      // Gray

	background := lipgloss.Color("#1a1b26") // Dark background
	foreground := lipgloss.Color("#c0caf5") // Light foreground

	return &Styles{
		Primary: primary,
		Success: success,
		Warning: warning,
		Error:   errorColor,
		Info:    info,
		Muted:   muted,

		Header: lipgloss.NewStyle().
			Background(primary).
			Foreground(background).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		Footer: lipgloss.NewStyle().
			Background(muted).
			Foreground(foreground).
			Padding(0, 1).
			MarginTop(1),

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(1, 2),

		Label: lipgloss.NewStyle().
			Foreground(info).
			Width(16),

		MutedText:   lipgloss.NewStyle().Foreground(muted),
		SuccessText: lipgloss.NewStyle().Foreground(success),
		ErrorText:   lipgloss.NewStyle().Foreground(errorColor),
		WarningText: lipgloss.NewStyle().Foreground(warning),
		InfoText:    lipgloss.NewStyle().Foreground(info),
	}
}
