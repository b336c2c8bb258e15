// Package locale formats note creation dates for the user's locale.
package locale

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Formatter renders a date as abbreviated month, day and year.
type Formatter interface {
	FormatDate(t time.Time) string
}

// dateStyle pairs a locale with its medium date layout.
type dateStyle struct {
	tag    language.Tag
	locale monday.Locale
	layout string
}

// styles lists supported locales. The first entry is the fallback.
var styles = []dateStyle{
	{language.AmericanEnglish, monday.LocaleEnUS, "Jan 2, 2006"},
	{language.BritishEnglish, monday.LocaleEnGB, "2 Jan 2006"},
	{language.German, monday.LocaleDeDE, "2. Jan 2006"},
	{language.French, monday.LocaleFrFR, "2 Jan 2006"},
	{language.Spanish, monday.LocaleEsES, "2 Jan 2006"},
	{language.Italian, monday.LocaleItIT, "2 Jan 2006"},
	{language.BrazilianPortuguese, monday.LocalePtBR, "2 de Jan de 2006"},
	{language.Dutch, monday.LocaleNlNL, "2 Jan 2006"},
	{language.Russian, monday.LocaleRuRU, "2 Jan 2006"},
	{language.Japanese, monday.LocaleJaJP, "2006年1月2日"},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(styles))
	for i, s := range styles {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}()

// DateFormatter formats dates for one matched locale.
type DateFormatter struct {
	style dateStyle
}

// New returns a formatter for the closest supported locale to tag.
func New(tag language.Tag) *DateFormatter {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return &DateFormatter{style: styles[idx]}
}

// FromEnv resolves the locale from override, then LC_ALL, LC_TIME and LANG.
// Unparseable values fall back to American English.
func FromEnv(override string) *DateFormatter {
	for _, v := range []string{override, os.Getenv("LC_ALL"), os.Getenv("LC_TIME"), os.Getenv("LANG")} {
		if v == "" {
			continue
		}
		tag, err := Parse(v)
		if err != nil {
			continue
		}
		return New(tag)
	}
	return New(language.AmericanEnglish)
}

// Parse accepts BCP 47 tags ("de-DE") and POSIX locale names ("de_DE.UTF-8").
// "C" and "POSIX" map to American English.
func Parse(s string) (language.Tag, error) {
	name := s
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, "_", "-")
	switch name {
	case "", "C", "POSIX":
		return language.AmericanEnglish, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", s, err)
	}
	return tag, nil
}

// FormatDate renders t in the matched locale's medium style.
func (f *DateFormatter) FormatDate(t time.Time) string {
	return monday.Format(t, f.style.layout, f.style.locale)
}

// Tag returns the supported locale that was matched.
func (f *DateFormatter) Tag() language.Tag { return f.style.tag }
