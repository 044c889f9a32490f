// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"sort"

	cliAdapter "github.com/janderssonse/pakdrop/internal/adapters/cli"
	"github.com/janderssonse/pakdrop/internal/config"
	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/janderssonse/pakdrop/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (app *CLI) createLangCommand() *cli.Command {
	return &cli.Command{
		Name:      "lang",
		Usage:     "Show or change the interface language",
		ArgsUsage: "[code]",
		Description: `Without an argument, list the available interface languages and
mark the active one. With a language code, persist it as the
interface language.

Examples:
  pakdrop lang        # list languages
  pakdrop lang pt     # switch to Portuguese`,
		Action: app.handleLang,
	}
}

func (app *CLI) handleLang(_ context.Context, cmd *cli.Command) error {
	output := cliAdapter.OutputFromFlags(app.json, app.quiet)
	args := cmd.Args().Slice()

	switch len(args) {
	case 0:
		return app.showLanguages(output)
	case 1:
		return app.setLanguage(output, args[0])
	default:
		return NewExitError(ExitUsageError, "expected at most one language code", nil)
	}
}

func (app *CLI) showLanguages(output domain.OutputPort) error {
	available := i18n.AvailableLanguages()

	if app.json {
		return output.Success("", map[string]interface{}{
			"current":   app.translator.Language(),
			"available": available,
		})
	}

	codes := make([]string, 0, len(available))
	for code := range available {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	rows := make([][]string, 0, len(codes))

	for _, code := range codes {
		marker := ""
		if code == app.translator.Language() {
			marker = "*"
		}

		rows = append(rows, []string{code, available[code], marker})
	}

	return output.Table([]string{"Code", "Language", "Active"}, rows)
}

func (app *CLI) setLanguage(output domain.OutputPort, code string) error {
	if !app.translator.SetLanguage(code) {
		return NewExitError(ExitUsageError, "unknown language code: "+code, nil)
	}

	settings := app.settings.Load()
	settings.Language = code

	if err := app.settings.Save(settings); err != nil {
		return NewExitError(ExitConfigError, err.Error(), err)
	}

	name := i18n.AvailableLanguages()[code]
	_ = output.Info(app.translator.GetWith("language_changed", i18n.Params{"language": name}))

	if app.json {
		return output.Success("", config.Settings{Language: code})
	}

	return nil
}
