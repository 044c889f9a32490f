// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/huh"
	cliAdapter "github.com/janderssonse/pakdrop/internal/adapters/cli"
	"github.com/janderssonse/pakdrop/internal/application"
	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/janderssonse/pakdrop/internal/i18n"
	"github.com/janderssonse/pakdrop/internal/installer"
	"github.com/urfave/cli/v3"
)

func (app *CLI) createInstallCommand() *cli.Command {
	return &cli.Command{
		Name:      "install",
		Usage:     "Install a package file with the native package manager",
		ArgsUsage: "<file>",
		Description: `Install a package file through the family's package manager,
elevated with pkexec. Progress output from the package manager is
streamed line by line.

Examples:
  pakdrop install hello_2.10-3_amd64.deb
  pakdrop install --yes --quiet htop-3.3.0-1-x86_64.pkg.tar.zst`,
		Action: app.handleInstall,
	}
}

func (app *CLI) createDepsCommand() *cli.Command {
	return &cli.Command{
		Name:      "deps",
		Usage:     "Check that the tools a package family needs are available",
		ArgsUsage: "<family|file>",
		Description: `Check that every executable needed to install packages of a family
is on the search path. Accepts a family name (debian, arch, fedora,
alpine) or a package file to derive the family from.

Exits with code 10 when anything is missing.`,
		Action: app.handleDeps,
	}
}

type installOutcome struct {
	success bool
	message string
}

func (app *CLI) handleInstall(ctx context.Context, cmd *cli.Command) error {
	result, err := app.inspectArg(ctx, cmd)
	if err != nil {
		return err
	}

	output := cliAdapter.OutputFromFlags(app.json, app.quiet)
	translate := app.translator
	family := result.Metadata.Family

	if ready, message := app.worker.CheckDependencies(family); !ready {
		return NewExitError(ExitDependencyError, message, domain.ErrDependencyMissing)
	}

	if !result.Compatible {
		_ = output.Info(translate.GetWith("incompatible_package", i18n.Params{
			"type":   family.String(),
			"distro": result.HostFamily.String(),
		}))
	}

	if !app.yes {
		proceed, err := app.confirmInstall(result)
		if err != nil {
			return NewExitError(ExitInterruptError, translate.Get("installation_cancelled"), err)
		}

		if !proceed {
			_ = output.Info(translate.Get("installation_cancelled"))

			return nil
		}
	}

	return app.runInstall(ctx, output, result)
}

// confirmInstall asks before touching the system. The prompt names the
// action the disposition calls for, so a downgrade is confirmed as one.
func (app *CLI) confirmInstall(result *domain.InspectResult) (bool, error) {
	translate := app.translator
	action := translate.Get(application.SuggestedAction(result.Disposition))

	var proceed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s %s %s?", action, result.Metadata.Name, result.Metadata.Version)).
				Description(result.Path).
				Value(&proceed),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}

	return proceed, nil
}

func (app *CLI) runInstall(ctx context.Context, output domain.OutputPort, result *domain.InspectResult) error {
	translate := app.translator
	family := result.Metadata.Family
	started := time.Now()

	_ = output.Info(translate.GetWith("starting_installation",
		i18n.Params{"package": result.Metadata.Name}))

	done := make(chan installOutcome, 1)

	err := app.worker.Start(ctx, result.Path, family,
		func(line string) { _ = output.Progress(line) },
		func(success bool, message string) { done <- installOutcome{success: success, message: message} },
	)
	if err != nil {
		if errors.Is(err, installer.ErrBusy) {
			return NewExitError(ExitGeneralError, translate.Get("installation_busy"), err)
		}

		return NewExitError(ExitInstallError, err.Error(), err)
	}

	// Ctrl+C cancels the running job gracefully instead of orphaning it.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	interrupted := false

	for {
		select {
		case <-signals:
			interrupted = true

			app.worker.Cancel()
		case outcome := <-done:
			return app.reportInstall(output, result, outcome, interrupted, time.Since(started))
		}
	}
}

func (app *CLI) reportInstall(output domain.OutputPort, result *domain.InspectResult,
	outcome installOutcome, interrupted bool, duration time.Duration,
) error {
	translate := app.translator

	report := domain.InstallReport{
		Path:      result.Path,
		Family:    result.Metadata.Family,
		Success:   outcome.success,
		Message:   outcome.message,
		Duration:  duration,
		Timestamp: time.Now(),
	}

	if outcome.success {
		return output.Success(translate.Get("package_installed_successfully"), report)
	}

	if app.json {
		_ = output.Success("", report)
	}

	if interrupted {
		return NewExitError(ExitInterruptError, translate.Get("installation_cancelled"), nil)
	}

	return NewExitError(ExitInstallError, translate.GetWith("installation_error",
		i18n.Params{"error": outcome.message}), nil)
}

func (app *CLI) handleDeps(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) != 1 {
		return NewExitError(ExitUsageError, "expected a family name or package file argument", nil)
	}

	family, err := domain.ParseFamily(args[0])
	if err != nil {
		if family = domain.ClassifyPath(args[0]); family == domain.FamilyUnknown {
			return NewExitError(ExitUsageError, app.translator.Get("unsupported_package_type"), err)
		}
	}

	output := cliAdapter.OutputFromFlags(app.json, app.quiet)

	tool, err := app.registry.For(family)
	if err != nil {
		return NewExitError(ExitUsageError, err.Error(), err)
	}

	var missing []string

	rows := make([][]string, 0, len(tool.RequiredTools()))

	for _, name := range tool.RequiredTools() {
		state := "ok"

		if !app.runner.CommandExists(name) {
			state = "missing"

			missing = append(missing, name)
		}

		rows = append(rows, []string{name, state})
	}

	report := domain.DependencyReport{
		Family:  family,
		Ready:   len(missing) == 0,
		Missing: missing,
	}

	if report.Ready {
		report.Message = app.translator.Get("all_dependencies_available")
	} else {
		report.Message = app.translator.GetWith("dependencies_missing",
			i18n.Params{"tools": strings.Join(missing, ", ")})
	}

	if app.json {
		return errors.Join(
			output.Success("", report),
			exitIfMissing(report),
		)
	}

	_ = output.Table([]string{"Tool", "State"}, rows)
	_ = output.Info(report.Message)

	return exitIfMissing(report)
}

func exitIfMissing(report domain.DependencyReport) error {
	if report.Ready {
		return nil
	}

	return NewExitError(ExitDependencyError, report.Message, domain.ErrDependencyMissing)
}
