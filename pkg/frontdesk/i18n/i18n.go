// Package i18n loads the embedded translation catalogs used for every string
// the front desk shows.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"slices"

	"github.com/leonelquinteros/gotext"
)

const domain = "default"

//go:embed locales/*.po
var locales embed.FS

// get is a variable so vet does not treat T as a printf wrapper; keys are
// looked up at runtime.
var get = gotext.Get

// Supported lists the languages with an embedded catalog.
var Supported = []string{"en", "es"}

// ErrUnsupportedLanguage is returned by Load for a language with no catalog.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Load parses the catalog for lang and makes it the one gotext.Get reads from.
func Load(lang string) error {
	if !slices.Contains(Supported, lang) {
		return fmt.Errorf("i18n: %q: %w", lang, ErrUnsupportedLanguage)
	}

	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return fmt.Errorf("i18n: reading %s catalog: %w", lang, err)
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", lang)
	l.AddTranslator(domain, po)
	gotext.SetStorage(l)

	return nil
}

// T translates key and, when args are given, formats the result with them.
// Unknown keys come back unchanged.
func T(key string, args ...any) string {
	return get(key, args...)
}
