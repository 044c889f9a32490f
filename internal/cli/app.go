// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/janderssonse/pakdrop/internal/adapters/pkgtool"
	"github.com/janderssonse/pakdrop/internal/adapters/platform"
	"github.com/janderssonse/pakdrop/internal/application"
	"github.com/janderssonse/pakdrop/internal/config"
	"github.com/janderssonse/pakdrop/internal/i18n"
	"github.com/janderssonse/pakdrop/internal/icons"
	"github.com/janderssonse/pakdrop/internal/installer"
	"github.com/urfave/cli/v3"
)

// Exit codes follow standard Unix conventions for better scripting support.
// Range 0-125 are safe to use (126+ have special meaning in shells).
const (
	ExitSuccess         = 0  // Operation completed successfully
	ExitGeneralError    = 1  // Generic failure (catch-all)
	ExitUsageError      = 2  // Invalid command line usage
	ExitConfigError     = 3  // Configuration file error
	ExitPermissionError = 4  // Permission denied
	ExitNotFoundError   = 5  // Requested file not found
	ExitDependencyError = 10 // Missing system tool
	ExitSystemError     = 12 // System call failed
	ExitInterruptError  = 14 // User interrupted (Ctrl+C)
	ExitInspectError    = 20 // Package metadata could not be read
	ExitInstallError    = 22 // Package installation failed
)

// ExitError carries a specific exit code for a failure mode.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// CLI wires the adapters behind each command and owns the global flags.
type CLI struct {
	app        *cli.Command
	verbose    bool
	json       bool
	quiet      bool
	yes        bool
	langFlag   string
	settings   *config.Store
	translator *i18n.Translator
	runner     *platform.CommandRunner
	files      *platform.FileManager
	detector   *platform.SystemDetector
	registry   *pkgtool.Registry
	inspector  *application.InspectService
	worker     *installer.Worker
}

// NewCLI creates the pakdrop command tree.
func NewCLI() *CLI {
	app := &CLI{}

	app.app = &cli.Command{
		Name:    "pakdrop",
		Usage:   "Inspect and install Linux package files",
		Version: Version,
		Suggest: true,
		Description: `Inspect .deb, .rpm, .apk and pacman package files, compare them
against the installed system state and install them with the native
package manager.

ESSENTIAL COMMANDS:
  inspect <file>    Show package metadata, compatibility and installed state
  install <file>    Install a package file with the native package manager
  status <file>     Show only the installed-state verdict for scripting
  deps <family>     Check that the tools a family needs are available

QUICK START:
  pakdrop hello_2.10-3_amd64.deb        # Open the interactive inspector
  pakdrop inspect hello_2.10-3_amd64.deb
  pakdrop install --yes hello_2.10-3_amd64.deb`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "show progress messages to stderr",
				Aliases:     []string{"v"},
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output structured JSON results",
				Aliases:     []string{"j"},
				Destination: &app.json,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Usage:       "suppress non-essential output",
				Aliases:     []string{"q"},
				Destination: &app.quiet,
			},
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "automatically answer yes to all prompts",
				Destination: &app.yes,
			},
			&cli.StringFlag{
				Name:        "lang",
				Usage:       "override the interface language for this run",
				Destination: &app.langFlag,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			app.wire()

			return ctx, nil
		},
		Action: app.defaultAction,
		Commands: []*cli.Command{
			app.createInspectCommand(),
			app.createStatusCommand(),
			app.createInstallCommand(),
			app.createDepsCommand(),
			app.createLangCommand(),
			app.createTUICommand(),
		},
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// App provides the root command for the entry point.
func App() *cli.Command {
	return NewCLI().app
}

// wire builds the adapter graph once the global flags are parsed.
func (app *CLI) wire() {
	app.runner = platform.NewCommandRunner(app.verbose)
	app.files = platform.NewFileManager(app.verbose)
	app.settings = config.NewStore(app.files)
	app.translator = i18n.New(app.languageCode())
	app.detector = platform.NewSystemDetector(app.files)
	app.registry = pkgtool.NewRegistry(app.runner, icons.NewFinder(app.files), app.translator)
	app.inspector = application.NewInspectService(app.registry, app.detector)
	app.worker = installer.NewWorker(app.registry, app.runner, app.translator)
}

// languageCode resolves the interface language: flag, then saved setting,
// then the system locale.
func (app *CLI) languageCode() string {
	if app.langFlag != "" {
		return app.langFlag
	}

	if saved := app.settings.Load().Language; saved != "" {
		return saved
	}

	return i18n.DetectSystemLanguage()
}

// defaultAction opens the interactive inspector, preloaded with the file
// argument when one is given.
func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()

	switch len(args) {
	case 0:
		return app.launchTUI(ctx, "")
	case 1:
		return app.launchTUI(ctx, args[0])
	default:
		return NewExitError(ExitUsageError, "expected at most one package file argument", nil)
	}
}
