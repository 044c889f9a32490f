// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package i18n_test

import (
	"testing"

	"github.com/janderssonse/pakdrop/internal/i18n"
	"github.com/stretchr/testify/assert"
)

func TestGetReturnsTranslation(t *testing.T) {
	t.Parallel()

	translator := i18n.New("pt")

	assert.Equal(t, "pt", translator.Language())
	assert.Equal(t, "Cancelar", translator.Get("cancel"))
}

func TestGetFallsBackToKey(t *testing.T) {
	t.Parallel()

	translator := i18n.New("en")

	assert.Equal(t, "no_such_key", translator.Get("no_such_key"))
}

func TestGetWithInterpolatesParams(t *testing.T) {
	t.Parallel()

	translator := i18n.New("en")

	message := translator.GetWith("installed_version", i18n.Params{"version": "1.2.3"})
	assert.Equal(t, "Installed version: 1.2.3", message)

	// Unknown placeholders stay intact rather than breaking the message.
	message = translator.GetWith("cancel", i18n.Params{"other": "x"})
	assert.Equal(t, "Cancel", message)
}

func TestNewUnknownLanguageFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	translator := i18n.New("tlh")

	assert.Equal(t, "en", translator.Language())
	assert.Equal(t, "Cancel", translator.Get("cancel"))
}

func TestSetLanguage(t *testing.T) {
	t.Parallel()

	translator := i18n.New("en")

	assert.True(t, translator.SetLanguage("ru"))
	assert.Equal(t, "Отмена", translator.Get("cancel"))

	assert.False(t, translator.SetLanguage("nope"))
	assert.Equal(t, "ru", translator.Language())
}

func TestAvailableLanguages(t *testing.T) {
	t.Parallel()

	available := i18n.AvailableLanguages()

	assert.Len(t, available, 4)
	assert.Equal(t, "Português", available["pt"])
	assert.Equal(t, "中文", available["zh"])
}

func TestDetectSystemLanguage(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{name: "direct match", lang: "pt_BR.UTF-8", want: "pt"},
		{name: "similar language routes to portuguese", lang: "es_ES.UTF-8", want: "pt"},
		{name: "similar language routes to chinese", lang: "ja_JP.UTF-8", want: "zh"},
		{name: "similar language routes to english", lang: "de_DE.UTF-8", want: "en"},
		{name: "unsupported language falls back", lang: "sv_SE.UTF-8", want: "en"},
		{name: "posix locale falls back", lang: "C", want: "en"},
		{name: "empty environment falls back", lang: "", want: "en"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			for _, name := range []string{"LANG", "LANGUAGE", "LC_ALL", "LC_MESSAGES"} {
				t.Setenv(name, "")
			}

			t.Setenv("LANG", testCase.lang)

			assert.Equal(t, testCase.want, i18n.DetectSystemLanguage())
		})
	}
}
