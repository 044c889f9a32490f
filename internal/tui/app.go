// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui implements the interactive package inspector.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/pakdrop/internal/application"
	"github.com/janderssonse/pakdrop/internal/config"
	"github.com/janderssonse/pakdrop/internal/i18n"
	"github.com/janderssonse/pakdrop/internal/installer"
	"github.com/janderssonse/pakdrop/internal/tui/models"
	"github.com/janderssonse/pakdrop/internal/tui/styles"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when the TUI is launched in a non-terminal
// environment.
var ErrNoTerminal = errors.New("interactive inspector requires a terminal")

// Screen represents the visible TUI screen.
type Screen int

// TUI screens.
const (
	InspectScreen Screen = iota
	ProgressScreen
)

// Options carries the dependencies and the optional preloaded file.
type Options struct {
	Path       string
	Translator *i18n.Translator
	Inspector  *application.InspectService
	Worker     *installer.Worker
	Settings   *config.Store
}

// App is the root model: it owns global navigation and delegates content
// to the screen models.
//
//nolint:containedctx // TUI models require context for proper cancellation propagation
type App struct {
	ctx         context.Context
	styles      *styles.Styles
	translator  *i18n.Translator
	inspector   *application.InspectService
	worker      *installer.Worker
	settings    *config.Store
	program     *tea.Program
	screen      Screen
	inspect     *models.Inspect
	progress    *models.Progress
	initialPath string
	width       int
	height      int
	quitting    bool
}

// NewApp creates the root TUI model.
func NewApp(ctx context.Context, opts Options) *App {
	appStyles := styles.New()

	app := &App{
		ctx:         ctx,
		styles:      appStyles,
		translator:  opts.Translator,
		inspector:   opts.Inspector,
		worker:      opts.Worker,
		settings:    opts.Settings,
		screen:      InspectScreen,
		initialPath: opts.Path,
	}

	app.inspect = models.NewInspect(ctx, appStyles, opts.Translator, opts.Inspector.Inspect)

	return app
}

// Launch runs the interactive inspector until the user quits.
func Launch(ctx context.Context, opts Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
	}

	app := NewApp(ctx, opts)

	program := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	app.program = program

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive inspector failed: %w", err)
	}

	return nil
}

// Init implements the tea.Model interface.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.inspect.Init()}

	if a.initialPath != "" {
		cmds = append(cmds, a.inspect.Load(a.initialPath))
	}

	return tea.Batch(cmds...)
}

// Update implements the tea.Model interface with global navigation.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		return a, a.forward(msg)
	case tea.KeyMsg:
		if model, cmd, handled := a.handleKey(msg); handled {
			return model, cmd
		}
	}

	return a, a.forward(msg)
}

// handleKey owns the global bindings; everything else goes to the screen.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	key := msg.String()

	if a.screen == ProgressScreen {
		switch key {
		case "ctrl+c", "c", "esc":
			if !a.progress.Done() {
				if a.worker.Cancel() {
					a.progress.Cancelling()
				}

				return a, nil, true
			}

			if key == "ctrl+c" {
				a.quitting = true

				return a, tea.Quit, true
			}

			return a, a.backToInspect(), true
		case "q", "enter":
			if !a.progress.Done() {
				return a, nil, true
			}

			if key == "q" {
				a.quitting = true

				return a, tea.Quit, true
			}

			return a, a.backToInspect(), true
		}

		return a, nil, false
	}

	switch key {
	case "ctrl+c":
		a.quitting = true

		return a, tea.Quit, true
	case "q":
		// The path prompt needs the letter.
		if a.inspect.Result() != nil {
			a.quitting = true

			return a, tea.Quit, true
		}
	case "i":
		if a.inspect.Result() != nil {
			return a, a.startInstall(), true
		}
	case "d":
		if a.inspect.Result() != nil {
			_, message := a.worker.CheckDependencies(a.inspect.Result().Metadata.Family)
			a.inspect.SetNotice(message)

			return a, nil, true
		}
	case "l":
		if a.inspect.Result() != nil {
			a.cycleLanguage()

			return a, nil, true
		}
	}

	return a, nil, false
}

// cycleLanguage switches the interface to the next available language and
// persists the choice.
func (a *App) cycleLanguage() {
	names := i18n.AvailableLanguages()

	codes := make([]string, 0, len(names))
	for code := range names {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	next := codes[0]

	for i, code := range codes {
		if code == a.translator.Language() {
			next = codes[(i+1)%len(codes)]

			break
		}
	}

	a.translator.SetLanguage(next)

	if a.settings != nil {
		settings := a.settings.Load()
		settings.Language = next
		_ = a.settings.Save(settings)
	}

	a.inspect.SetNotice(a.translator.GetWith("language_changed", i18n.Params{"language": names[next]}))
}

// startInstall hands the loaded package to the worker and switches to the
// progress screen. Worker callbacks arrive as messages via program.Send.
func (a *App) startInstall() tea.Cmd {
	result := a.inspect.Result()
	if result == nil {
		return nil
	}

	if ready, message := a.worker.CheckDependencies(result.Metadata.Family); !ready {
		a.inspect.SetNotice(message)

		return nil
	}

	a.progress = models.NewProgress(a.styles, a.translator, result.Metadata.Name)
	a.screen = ProgressScreen

	err := a.worker.Start(a.ctx, result.Path, result.Metadata.Family,
		func(line string) { a.program.Send(models.LineMsg(line)) },
		func(success bool, message string) {
			a.program.Send(models.DoneMsg{Success: success, Message: message})
		},
	)
	if err != nil {
		return tea.Batch(a.progress.Init(), func() tea.Msg {
			return models.DoneMsg{Success: false, Message: err.Error()}
		})
	}

	return a.progress.Init()
}

// backToInspect returns to the inspection screen and reloads the file so
// the installed-state verdict reflects what just happened.
func (a *App) backToInspect() tea.Cmd {
	path := a.inspect.Result().Path
	a.screen = InspectScreen
	a.progress = nil

	return a.inspect.Load(path)
}

// forward routes a message to the active screen model.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch a.screen {
	case ProgressScreen:
		if a.progress != nil {
			_, cmd = a.progress.Update(msg)
		}
	default:
		_, cmd = a.inspect.Update(msg)
	}

	return cmd
}

// View implements the tea.Model interface.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	header := a.styles.Header.Render(a.translator.Get("app_title"))

	var content string

	switch a.screen {
	case ProgressScreen:
		if a.progress != nil {
			content = a.progress.View()
		}
	default:
		content = a.inspect.View()
	}

	footer := a.styles.Footer.Render(a.footerHints())

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// footerHints lists the keys that currently do something.
func (a *App) footerHints() string {
	translate := a.translator

	if a.screen == ProgressScreen {
		if a.progress != nil && a.progress.Done() {
			return "enter back · q quit"
		}

		return "c " + translate.Get("cancel")
	}

	if a.inspect.Result() == nil {
		return "enter " + translate.Get("select_package") + " · ctrl+c quit"
	}

	hints := []string{
		"i " + a.inspect.ActionLabel(),
		"d deps",
		"l lang",
		"q quit",
	}

	return strings.Join(hints, " · ")
}
