// Package locale picks the active language of a request
// and renders it as the language segment of substituted URLs.
package locale

import (
	"fmt"

	"github.com/xy-planning-network/cairn"
	"golang.org/x/text/language"
)

// A Locale holds the configured default and supported languages.
type Locale struct {
	Default     language.Tag
	ShowDefault bool

	supported []language.Tag
	matcher   language.Matcher
}

// New constructs a *Locale.
// The default language is always supported, whether or not supported names it.
func New(def string, supported []string, showDefault bool) (*Locale, error) {
	if def == "" {
		def = "en"
	}

	d, err := language.Parse(def)
	if err != nil {
		return nil, fmt.Errorf("%w: default language %q: %s", cairn.ErrBadConfig, def, err)
	}

	tags := []language.Tag{d}
	for _, s := range supported {
		t, err := language.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: supported language %q: %s", cairn.ErrBadConfig, s, err)
		}

		if t == d {
			continue
		}

		tags = append(tags, t)
	}

	return &Locale{
		Default:     d,
		ShowDefault: showDefault,
		supported:   tags,
		matcher:     language.NewMatcher(tags),
	}, nil
}

// Supported lists the languages l matches against, default first.
func (l *Locale) Supported() []language.Tag {
	out := make([]language.Tag, len(l.supported))
	copy(out, l.supported)
	return out
}

// Detect returns the active language.
// An explicit language, from the query or the session, wins when it closely matches a supported one.
// Otherwise the best match for the Accept-Language header is used, falling back to the default.
func (l *Locale) Detect(queryLang, sessionLang, acceptLanguage string) language.Tag {
	for _, explicit := range []string{queryLang, sessionLang} {
		if explicit == "" {
			continue
		}

		t, err := language.Parse(explicit)
		if err != nil {
			continue
		}

		if _, idx, conf := l.matcher.Match(t); conf >= language.High {
			return l.supported[idx]
		}
	}

	if acceptLanguage == "" {
		return l.Default
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return l.Default
	}

	if _, idx, conf := l.matcher.Match(tags...); conf > language.No {
		return l.supported[idx]
	}

	return l.Default
}

// Segment returns the path segment identifying tag in substituted URLs.
// The default language has no segment unless ShowDefault is set.
func (l *Locale) Segment(tag language.Tag) string {
	if tag == l.Default && !l.ShowDefault {
		return ""
	}

	return tag.String()
}
