// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/pakdrop/internal/i18n"
	"github.com/mattn/go-runewidth"
	"github.com/janderssonse/pakdrop/internal/tui/styles"
)

// maxLogLines bounds the kept package-manager output.
const maxLogLines = 200

// LineMsg is one line of package-manager output.
type LineMsg string

// DoneMsg is the installation verdict.
type DoneMsg struct {
	Success bool
	Message string
}

// Progress is the installation progress screen: a spinner while the
// package manager runs and the tail of its streamed output.
type Progress struct {
	styles      *styles.Styles
	translator  *i18n.Translator
	spinner     spinner.Model
	packageName string
	lines       []string
	done        bool
	success     bool
	message     string
	cancelling  bool
	width       int
	height      int
}

// NewProgress creates the progress screen for one package.
func NewProgress(appStyles *styles.Styles, translator *i18n.Translator, packageName string) *Progress {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(appStyles.Primary)

	return &Progress{
		styles:      appStyles,
		translator:  translator,
		spinner:     spin,
		packageName: packageName,
	}
}

// Init implements the tea.Model interface.
func (m *Progress) Init() tea.Cmd {
	return m.spinner.Tick
}

// Done reports whether the installation has reached a verdict.
func (m *Progress) Done() bool {
	return m.done
}

// Cancelling marks the screen while a graceful stop is in flight.
func (m *Progress) Cancelling() {
	m.cancelling = true
}

// Update implements the tea.Model interface.
func (m *Progress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil
	case LineMsg:
		m.lines = append(m.lines, string(msg))
		if len(m.lines) > maxLogLines {
			m.lines = m.lines[len(m.lines)-maxLogLines:]
		}

		return m, nil
	case DoneMsg:
		m.done = true
		m.success = msg.Success
		m.message = msg.Message

		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

// View implements the tea.Model interface.
func (m *Progress) View() string {
	translate := m.translator

	header := translate.GetWith("starting_installation", i18n.Params{"package": m.packageName})

	var status string

	switch {
	case m.done && m.success:
		status = m.styles.SuccessText.Render(m.message)
	case m.done:
		status = m.styles.ErrorText.Render(m.message)
	case m.cancelling:
		status = m.spinner.View() + " " + m.styles.WarningText.Render(translate.Get("installation_cancelled"))
	default:
		status = m.spinner.View() + " " + translate.Get("installation_in_progress")
	}

	sections := []string{
		m.styles.Title.Render(header),
		"",
		m.logView(),
		"",
		status,
	}

	return strings.Join(sections, "\n")
}

// logView renders the output tail that fits the screen, one truncated
// line per package-manager line so long dpkg output never wraps.
func (m *Progress) logView() string {
	visible := m.lines

	if m.height > 8 && len(visible) > m.height-8 {
		visible = visible[len(visible)-(m.height-8):]
	}

	if len(visible) == 0 {
		return m.styles.MutedText.Render(m.translator.Get("preparing_installation"))
	}

	rendered := make([]string, len(visible))
	for i, line := range visible {
		rendered[i] = m.truncateLine(line)
	}

	return m.styles.MutedText.Render(strings.Join(rendered, "\n"))
}

func (m *Progress) truncateLine(line string) string {
	available := m.width - 2
	if available <= 0 || runewidth.StringWidth(line) <= available {
		return line
	}

	return runewidth.Truncate(line, available, "...")
}
