// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"fmt"

	cliAdapter "github.com/janderssonse/pakdrop/internal/adapters/cli"
	"github.com/janderssonse/pakdrop/internal/application"
	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/janderssonse/pakdrop/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (app *CLI) createInspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show package metadata, compatibility and installed state",
		ArgsUsage: "<file>",
		Description: `Read the metadata of a package file, check it against the running
system and report whether the package is already installed.

Examples:
  pakdrop inspect hello_2.10-3_amd64.deb
  pakdrop inspect --json htop-3.3.0-1-x86_64.pkg.tar.zst`,
		Action: app.handleInspect,
	}
}

func (app *CLI) createStatusCommand() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Show only the installed-state verdict for a package file",
		ArgsUsage: "<file>",
		Description: `Report whether the package in a file is installed and how its
version relates to the installed one. The single-word verdict on the
last line is one of: not-installed, same-version, package-newer,
installed-newer.`,
		Action: app.handleStatus,
	}
}

func (app *CLI) handleInspect(ctx context.Context, cmd *cli.Command) error {
	result, err := app.inspectArg(ctx, cmd)
	if err != nil {
		return err
	}

	output := cliAdapter.OutputFromFlags(app.json, app.quiet)

	if app.json {
		return output.Success("", result)
	}

	translate := app.translator

	meta := result.Metadata
	_ = output.Table(
		[]string{"Field", "Value"},
		[][]string{
			{"Name", meta.Name},
			{translate.Get("package_type"), meta.Family.String()},
			{translate.Get("package_version"), meta.Version},
			{translate.Get("package_size"), meta.InstalledSize},
			{translate.Get("package_maintainer"), meta.Maintainer},
			{translate.Get("package_description"), meta.Description},
		},
	)

	if !result.Compatible {
		_ = output.Info(translate.GetWith("incompatible_package", i18n.Params{
			"type":   meta.Family.String(),
			"distro": result.HostFamily.String(),
		}))
	}

	_ = output.Info(app.dispositionLine(result))

	if result.IconPath != "" {
		_ = output.Info("Icon: " + result.IconPath)
	}

	return nil
}

func (app *CLI) handleStatus(ctx context.Context, cmd *cli.Command) error {
	result, err := app.inspectArg(ctx, cmd)
	if err != nil {
		return err
	}

	output := cliAdapter.OutputFromFlags(app.json, app.quiet)

	if app.json {
		return output.Success("", map[string]interface{}{
			"name":              result.Metadata.Name,
			"installed":         result.Installed,
			"installed_version": result.InstalledVersion,
			"disposition":       result.Disposition,
		})
	}

	_ = output.Info(app.dispositionLine(result))

	return output.Success(string(result.Disposition), nil)
}

// dispositionLine renders the human verdict for an inspection result.
func (app *CLI) dispositionLine(result *domain.InspectResult) string {
	translate := app.translator

	switch result.Disposition {
	case domain.DispositionPackageNewer:
		return translate.GetWith("newer_version_available",
			i18n.Params{"version": result.InstalledVersion})
	case domain.DispositionInstalledNewer:
		return translate.GetWith("older_version_installed",
			i18n.Params{"version": result.InstalledVersion})
	case domain.DispositionSameVersion:
		return translate.Get("same_version_installed")
	default:
		return translate.Get("package_not_installed_status")
	}
}

// inspectArg validates the single file argument and runs the inspection,
// mapping failures to exit codes.
func (app *CLI) inspectArg(ctx context.Context, cmd *cli.Command) (*domain.InspectResult, error) {
	args := cmd.Args().Slice()
	if len(args) != 1 {
		return nil, NewExitError(ExitUsageError, "expected exactly one package file argument", nil)
	}

	result, err := app.inspector.Inspect(ctx, args[0])
	if err != nil {
		return nil, app.inspectError(args[0], err)
	}

	return result, nil
}

func (app *CLI) inspectError(path string, err error) error {
	switch {
	case errors.Is(err, application.ErrFileNotFound):
		return NewExitError(ExitNotFoundError, fmt.Sprintf("no such file: %s", path), err)
	case errors.Is(err, domain.ErrUnsupportedType):
		return NewExitError(ExitUsageError, app.translator.Get("unsupported_package_type"), err)
	default:
		return NewExitError(ExitInspectError, app.translator.GetWith("error_extracting_info",
			i18n.Params{"error": err.Error()}), err)
	}
}
