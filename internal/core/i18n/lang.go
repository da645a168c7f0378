// Package i18n holds the en/ro string tables and locale aware formatting
package i18n

import (
	"strings"

	perr "layoffs/internal/platform/errors"

	"golang.org/x/text/language"
)

// Lang is a supported display language
type Lang string

const (
	EN Lang = "en"
	RO Lang = "ro"
)

// DefaultLang is used when nothing else is known about the reader
const DefaultLang = RO

// Langs lists the supported languages, default first
func Langs() []Lang { return []Lang{RO, EN} }

// matcher order mirrors Langs, index 0 is the fallback
var matcher = language.NewMatcher([]language.Tag{language.Romanian, language.English})

func fromIndex(i int) Lang {
	langs := Langs()
	if i < 0 || i >= len(langs) {
		return DefaultLang
	}
	return langs[i]
}

// Valid reports whether l is supported
func (l Lang) Valid() bool { return l == EN || l == RO }

// String implements fmt.Stringer
func (l Lang) String() string { return string(l) }

// ParseLang resolves a BCP 47 tag ("en", "ro-RO", "en-GB") to a supported
// language. Empty input yields DefaultLang; malformed or unsupported tags
// are invalid arguments.
func ParseLang(s string) (Lang, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLang, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", perr.InvalidArgf("invalid language %q", s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", perr.InvalidArgf("unsupported language %q", s)
	}
	return fromIndex(idx), nil
}

// Negotiate picks a language from an Accept-Language header value,
// falling back to DefaultLang
func Negotiate(accept string) Lang {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	return fromIndex(idx)
}

// Or returns l when valid, otherwise fallback
func (l Lang) Or(fallback Lang) Lang {
	if l.Valid() {
		return l
	}
	return fallback
}
