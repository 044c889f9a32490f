// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models implements the TUI screen models.
package models

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/janderssonse/pakdrop/internal/application"
	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/janderssonse/pakdrop/internal/i18n"
	"github.com/janderssonse/pakdrop/internal/tui/styles"
)

// Card layout constants.
const (
	labelWidth     = 16 // matches styles.Label width
	cardFrameWidth = 6  // border and padding of the metadata card
)

// LoadedMsg carries the outcome of an inspection into the model tree.
type LoadedMsg struct {
	Result *domain.InspectResult
	Err    error
}

// InspectFunc runs the inspection behind the screen.
type InspectFunc func(ctx context.Context, path string) (*domain.InspectResult, error)

// Inspect is the package inspection screen: a path prompt until a file is
// loaded, then the metadata card with the installed-state verdict.
//
//nolint:containedctx // TUI models require context for proper cancellation propagation
type Inspect struct {
	ctx        context.Context
	styles     *styles.Styles
	translator *i18n.Translator
	inspect    InspectFunc
	input      textinput.Model
	result     *domain.InspectResult
	errMsg     string
	notice     string
	loading    bool
	width      int
	height     int
}

// NewInspect creates the inspection screen.
func NewInspect(ctx context.Context, appStyles *styles.Styles, translator *i18n.Translator, inspect InspectFunc) *Inspect {
	input := textinput.New()
	input.Placeholder = translator.Get("select_package")
	input.Prompt = "> "
	input.Focus()

	return &Inspect{
		ctx:        ctx,
		styles:     appStyles,
		translator: translator,
		inspect:    inspect,
		input:      input,
	}
}

// Init implements the tea.Model interface.
func (m *Inspect) Init() tea.Cmd {
	return textinput.Blink
}

// Load returns a command that inspects the given file.
func (m *Inspect) Load(path string) tea.Cmd {
	m.loading = true
	m.errMsg = ""
	m.notice = ""

	return func() tea.Msg {
		result, err := m.inspect(m.ctx, path)

		return LoadedMsg{Result: result, Err: err}
	}
}

// Result returns the currently loaded inspection, or nil.
func (m *Inspect) Result() *domain.InspectResult {
	return m.result
}

// SetNotice shows a transient line beneath the card.
func (m *Inspect) SetNotice(notice string) {
	m.notice = notice
}

// Update implements the tea.Model interface.
func (m *Inspect) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil
	case LoadedMsg:
		m.loading = false

		if msg.Err != nil {
			m.result = nil
			m.errMsg = msg.Err.Error()

			return m, nil
		}

		m.result = msg.Result
		m.errMsg = ""

		return m, nil
	case tea.KeyMsg:
		if m.result == nil && msg.String() == "enter" {
			path := strings.TrimSpace(m.input.Value())
			if path != "" {
				return m, m.Load(path)
			}

			return m, nil
		}
	}

	if m.result == nil {
		var cmd tea.Cmd

		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	return m, nil
}

// View implements the tea.Model interface.
func (m *Inspect) View() string {
	if m.result == nil {
		return m.promptView()
	}

	return m.cardView()
}

func (m *Inspect) promptView() string {
	translate := m.translator

	lines := []string{
		m.styles.Title.Render(translate.Get("app_description")),
		"",
		m.input.View(),
		"",
		m.styles.MutedText.Render(translate.Get("supported_formats")),
	}

	if m.loading {
		lines = append(lines, "", m.styles.InfoText.Render(translate.Get("preparing_installation")))
	}

	if m.errMsg != "" {
		lines = append(lines, "", m.styles.ErrorText.Render(m.errMsg))
	}

	return strings.Join(lines, "\n")
}

func (m *Inspect) cardView() string {
	translate := m.translator
	meta := m.result.Metadata

	rows := []string{
		m.row("Name", meta.Name),
		m.row(translate.Get("package_type"), meta.Family.String()),
		m.row(translate.Get("package_version"), meta.Version),
		m.row(translate.Get("package_size"), meta.InstalledSize),
		m.row(translate.Get("package_maintainer"), meta.Maintainer),
		m.row(translate.Get("package_description"), meta.Description),
	}

	if m.result.IconPath != "" {
		rows = append(rows, m.row("Icon", m.result.IconPath))
	}

	sections := []string{
		m.styles.Card.Render(strings.Join(rows, "\n")),
		"",
		m.dispositionView(),
	}

	if !m.result.Compatible {
		sections = append(sections, m.styles.WarningText.Render(
			translate.GetWith("incompatible_package", i18n.Params{
				"type":   meta.Family.String(),
				"distro": m.result.HostFamily.String(),
			})))
	}

	if m.notice != "" {
		sections = append(sections, m.styles.InfoText.Render(m.notice))
	}

	if m.errMsg != "" {
		sections = append(sections, m.styles.ErrorText.Render(m.errMsg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Inspect) dispositionView() string {
	translate := m.translator
	result := m.result

	switch result.Disposition {
	case domain.DispositionPackageNewer:
		return m.styles.WarningText.Render(translate.GetWith("newer_version_available",
			i18n.Params{"version": result.InstalledVersion}))
	case domain.DispositionInstalledNewer:
		return m.styles.ErrorText.Render(translate.GetWith("older_version_installed",
			i18n.Params{"version": result.InstalledVersion}))
	case domain.DispositionSameVersion:
		return m.styles.SuccessText.Render(translate.Get("same_version_installed"))
	default:
		return m.styles.MutedText.Render(translate.Get("package_not_installed_status"))
	}
}

// ActionLabel names the install action the disposition calls for.
func (m *Inspect) ActionLabel() string {
	if m.result == nil {
		return m.translator.Get("action_install")
	}

	return m.translator.Get(application.SuggestedAction(m.result.Disposition))
}

func (m *Inspect) row(label, value string) string {
	// Long descriptions and CJK values must not wrap inside the card.
	if available := m.width - labelWidth - cardFrameWidth; available > 3 &&
		runewidth.StringWidth(value) > available {
		value = runewidth.Truncate(value, available, "...")
	}

	return m.styles.Label.Render(label) + value
}
