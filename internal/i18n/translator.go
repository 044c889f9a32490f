// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package i18n loads embedded message catalogs and resolves user-facing
// strings for the active language.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed catalogs/*.toml
var catalogFS embed.FS

// DefaultLanguage is the catalog every lookup falls back to.
const DefaultLanguage = "en"

// languageNames maps catalog codes to their native display names.
var languageNames = map[string]string{
	"en": "English",
	"pt": "Português",
	"ru": "Русский",
	"zh": "中文",
}

// similarLanguages routes locales without a catalog of their own to the
// closest one that exists.
var similarLanguages = map[string]string{
	"es": "pt",
	"fr": "en",
	"de": "en",
	"it": "en",
	"ja": "zh",
	"ko": "zh",
}

// localeEnvVars are consulted in order when detecting the system language.
var localeEnvVars = []string{"LANG", "LANGUAGE", "LC_ALL", "LC_MESSAGES"}

// Params substitutes named placeholders in a message.
type Params map[string]string

// Translator resolves message keys against a loaded catalog, falling back
// to English and finally to the key itself.
type Translator struct {
	language string
	messages map[string]string
	fallback map[string]string
}

// New creates a translator for the given language code. An unknown code
// falls back to English.
func New(languageCode string) *Translator {
	translator := &Translator{
		language: DefaultLanguage,
		fallback: loadCatalog(DefaultLanguage),
	}
	translator.messages = translator.fallback

	if languageCode != "" && languageCode != DefaultLanguage {
		translator.SetLanguage(languageCode)
	}

	return translator
}

// NewFromSystem creates a translator for the detected system language.
func NewFromSystem() *Translator {
	return New(DetectSystemLanguage())
}

// SetLanguage switches the active catalog. It reports false and keeps the
// current catalog when no catalog exists for the code.
func (t *Translator) SetLanguage(languageCode string) bool {
	if _, known := languageNames[languageCode]; !known {
		return false
	}

	messages := loadCatalog(languageCode)
	if messages == nil {
		return false
	}

	t.language = languageCode
	t.messages = messages

	return true
}

// Language returns the active language code.
func (t *Translator) Language() string {
	return t.language
}

// Get returns the message for a key, or the key itself when no catalog
// has it.
func (t *Translator) Get(key string) string {
	if message, ok := t.messages[key]; ok {
		return message
	}

	if message, ok := t.fallback[key]; ok {
		return message
	}

	return key
}

// GetWith returns the message for a key with {name} placeholders replaced
// by the given parameters. Unknown placeholders are left intact.
func (t *Translator) GetWith(key string, params Params) string {
	message := t.Get(key)

	for name, value := range params {
		message = strings.ReplaceAll(message, "{"+name+"}", value)
	}

	return message
}

// AvailableLanguages returns the catalog codes mapped to native names.
func AvailableLanguages() map[string]string {
	available := make(map[string]string, len(languageNames))

	for code, name := range languageNames {
		if _, err := catalogFS.ReadFile(catalogPath(code)); err == nil {
			available[code] = name
		}
	}

	return available
}

// DetectSystemLanguage inspects the locale environment and returns the
// best matching catalog code, routing near languages through
// similarLanguages before falling back to English.
func DetectSystemLanguage() string {
	for _, name := range localeEnvVars {
		value := os.Getenv(name)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}

		if code := catalogForLocale(value); code != "" {
			return code
		}
	}

	return DefaultLanguage
}

// catalogForLocale maps a locale string such as "pt_BR.UTF-8" to a
// catalog code, or "" when nothing matches.
func catalogForLocale(locale string) string {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	locale = strings.ReplaceAll(locale, "_", "-")

	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}

	base, _ := tag.Base()
	code := base.String()

	if mapped, ok := similarLanguages[code]; ok {
		code = mapped
	}

	if _, known := languageNames[code]; known {
		return code
	}

	return ""
}

func catalogPath(languageCode string) string {
	return "catalogs/" + languageCode + ".toml"
}

func loadCatalog(languageCode string) map[string]string {
	data, err := catalogFS.ReadFile(catalogPath(languageCode))
	if err != nil {
		return nil
	}

	var messages map[string]string
	if err := toml.Unmarshal(data, &messages); err != nil {
		panic(fmt.Sprintf("malformed embedded catalog %s: %v", languageCode, err))
	}

	return messages
}
