// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"fmt"

	"github.com/janderssonse/pakdrop/internal/tui"
	"github.com/urfave/cli/v3"
)

func (app *CLI) createTUICommand() *cli.Command {
	return &cli.Command{
		Name:      "tui",
		Usage:     "Open the interactive package inspector",
		ArgsUsage: "[file]",
		Description: `Open the interactive Terminal User Interface, optionally preloaded
with a package file.

Navigation:
- Type a path and press Enter to inspect a file
- Press i to install, d to check dependencies, l to switch language
- Press q or Ctrl+C to quit`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return app.launchTUI(ctx, cmd.Args().First())
		},
	}
}

func (app *CLI) launchTUI(ctx context.Context, path string) error {
	err := tui.Launch(ctx, tui.Options{
		Path:       path,
		Translator: app.translator,
		Inspector:  app.inspector,
		Worker:     app.worker,
		Settings:   app.settings,
	})
	if err != nil {
		if app.verbose {
			return NewExitError(ExitGeneralError, fmt.Sprintf("failed to launch interactive inspector: %v", err), err)
		}

		return NewExitError(ExitGeneralError, "failed to launch interactive inspector (terminal required)", err)
	}

	return nil
}
