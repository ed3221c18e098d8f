package locale

import (
	"regexp"
	"strings"
	"unicode"
)

// wordChar is the Unicode-aware equivalent of Python's \w under re.UNICODE:
// letters, digits and underscore. Go's regexp treats \w as ASCII-only, which
// would silently drop every accented French letter, so every rewrite below
// spells this class out explicitly instead.
const wordChar = `[\p{L}\p{N}_]`

var (
	frNumber = regexp.MustCompile(
		`\d{1,3}(?:\s*[.\s]\s*\d{3})*(?:\s*,\s*\d+)?\s*[€$%]` + `|` + `\d+(?:[.\-\s]+\d+){3,}`,
	)
	frEllipsis = regexp.MustCompile(`\.\.\.`)
	frComma    = regexp.MustCompile(`(?i)([a-zéàèùâêîôûëïüÿç]\s*)(,)(\s*` + wordChar + `)?`)
	frPunct    = regexp.MustCompile(`(` + wordChar + `|\))\s*([!?;…./])(\s*` + wordChar + `)?`)
	frParens   = regexp.MustCompile(`\(([^)]+)\)`)
	frApos     = regexp.MustCompile(`(` + wordChar + `)\s*'\s*(` + wordChar + `)`)
	frTil      = regexp.MustCompile(`(t)’(il|elle)`)
	frSpaces   = regexp.MustCompile(`\s+`)
	frInitials = regexp.MustCompile(
		`([A-ZÉÀÈÙÂÊÎÔÛËÏÜŸÇ]\s*\.\s*)+[A-ZÉÀÈÙÂÊÎÔÛËÏÜŸÇ][a-zéàèùâêîôûëïüÿç]`,
	)
	frInitialChar = regexp.MustCompile(`(` + wordChar + `)\s*\.\s*`)
	frDate        = regexp.MustCompile(
		`(\s|^)(\d{2}\s*/\s*\d{2}\s*/\s*(?:\d{2}|\d{4})\s*|\d{2}\s*\.\s*\d{2}\s*\.\s*(?:\d{2}|\d{4})\s*)`,
	)
	frDateSep = regexp.MustCompile(`\s*[./]\s*`)
	frStrip   = regexp.MustCompile(`(^\s+|\s+$)`)

	frWordShape = regexp.MustCompile(`(?i)([a-zéàèùâêîôûëïüÿç]’)?[a-zéàèùâêîôûëïüÿç\-]+`)
)

// stripNumberSeparators removes every '.', '-' and whitespace rune from a
// matched numeric run, leaving digits, the decimal comma and any trailing
// currency symbol untouched.
func stripNumberSeparators(match string) string {
	var b strings.Builder
	b.Grow(len(match))
	for _, r := range match {
		if r == '.' || r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// frRewrites is the ordered normalization cascade for fr_FR, ported from the
// usual_typos list of the Python reference implementation. Order matters:
// later rewrites rely on earlier ones having already run (punctuation
// spacing assumes numbers have already been compacted, whitespace collapse
// cleans up the extra spaces every prior rewrite introduces, and the final
// strip trims whatever collapse left at the edges).
var frRewrites = []Rewrite{
	func(s string) string {
		return frNumber.ReplaceAllStringFunc(s, stripNumberSeparators)
	},
	func(s string) string {
		return frEllipsis.ReplaceAllString(s, "…")
	},
	func(s string) string {
		return frComma.ReplaceAllString(s, "$1 $2 $3")
	},
	func(s string) string {
		return frPunct.ReplaceAllString(s, "$1 $2 $3")
	},
	func(s string) string {
		return frParens.ReplaceAllString(s, "( $1 )")
	},
	func(s string) string {
		return frApos.ReplaceAllString(s, "$1’$2")
	},
	func(s string) string {
		return frTil.ReplaceAllString(s, "$1-$2")
	},
	func(s string) string {
		return frSpaces.ReplaceAllString(s, " ")
	},
	func(s string) string {
		return frInitials.ReplaceAllStringFunc(s, func(m string) string {
			return frInitialChar.ReplaceAllString(m, "$1. ")
		})
	},
	func(s string) string {
		return frDate.ReplaceAllStringFunc(s, func(m string) string {
			return frDateSep.ReplaceAllString(m, "/")
		})
	},
	func(s string) string {
		return frStrip.ReplaceAllString(s, "")
	},
}

// French is the fr_FR LanguageProfile, ported from the Aramis project's
// fr_FR BasicLang definition.
type French struct{}

// NewFrench builds the fr_FR LanguageProfile.
func NewFrench() French {
	return French{}
}

func (French) Locale() Locale {
	return Locale{Lang: "fr", Region: "fr"}
}

func (French) Normalize(text string) string {
	for _, rw := range frRewrites {
		text = rw(text)
	}
	return text
}

func (French) Split(text string) []string {
	return strings.Split(text, " ")
}

func (French) IsWord(surface string) bool {
	loc := frWordShape.FindStringIndex(surface)
	return loc != nil && loc[0] == 0
}

func (French) DictionaryName() string {
	return French{}.Locale().Unix()
}
