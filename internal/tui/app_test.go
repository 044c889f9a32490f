// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/janderssonse/pakdrop/internal/adapters/platform"
	"github.com/janderssonse/pakdrop/internal/config"
	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/janderssonse/pakdrop/internal/i18n"
	"github.com/janderssonse/pakdrop/internal/tui/models"
	"github.com/janderssonse/pakdrop/internal/tui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, language string) *App {
	t.Helper()

	translator := i18n.New(language)
	appStyles := styles.New()

	app := &App{
		ctx:        context.Background(),
		styles:     appStyles,
		translator: translator,
		settings:   config.NewStoreAt(filepath.Join(t.TempDir(), "settings.toml"), platform.NewFileManager(false)),
		screen:     InspectScreen,
	}

	app.inspect = models.NewInspect(context.Background(), appStyles, translator,
		func(_ context.Context, _ string) (*domain.InspectResult, error) {
			return nil, nil
		})

	return app
}

func TestCycleLanguageAdvancesAndPersists(t *testing.T) {
	app := newTestApp(t, "en")

	app.cycleLanguage()

	assert.Equal(t, "pt", app.translator.Language())
	assert.Equal(t, "pt", app.settings.Load().Language)
}

func TestCycleLanguageWrapsAround(t *testing.T) {
	app := newTestApp(t, "zh")

	app.cycleLanguage()

	assert.Equal(t, "en", app.translator.Language())
}

func TestLaunchRequiresTerminal(t *testing.T) {
	// Test processes never have a TTY on stdout.
	err := Launch(context.Background(), Options{Translator: i18n.New("en")})

	require.ErrorIs(t, err, ErrNoTerminal)
}
