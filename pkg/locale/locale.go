// Package locale provides a neutral Locale representation and the
// LanguageProfile capability that drives text normalization, tokenization
// and word-shape recognition for a given natural language.
package locale

import (
	"regexp"
	"strings"

	"github.com/temporal-IPA/nlu/pkg/nluerr"
)

var localeRe = regexp.MustCompile(`(?i)^([a-zA-Z]{2,3})[-_]([a-zA-Z]{2,3})$`)

// Locale is a neutral representation of a language/region pair, which can
// then be rendered in different conventions for different consumers.
type Locale struct {
	Lang   string
	Region string
}

// Parse parses a locale string of the form "ll-RR" or "ll_RR" (case
// insensitive). Returns nluerr.InvalidLocale if s does not match.
func Parse(s string) (Locale, error) {
	m := localeRe.FindStringSubmatch(s)
	if m == nil {
		return Locale{}, nluerr.InvalidLocale(s)
	}

	return Locale{
		Lang:   strings.ToLower(m[1]),
		Region: strings.ToLower(m[2]),
	}, nil
}

// Unix renders the locale in the conventional Unix form ("ll_RR"), used to
// key dictionary files (and popularized by Hunspell).
func (l Locale) Unix() string {
	return l.Lang + "_" + strings.ToUpper(l.Region)
}

// String renders the locale the same way Unix does.
func (l Locale) String() string {
	return l.Unix()
}
