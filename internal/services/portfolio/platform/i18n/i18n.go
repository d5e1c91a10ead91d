// Package i18n negotiates the page locale for a request.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Negotiator picks one supported locale per request.
type Negotiator struct {
	supported []language.Tag
	fallback  language.Tag
	matcher   language.Matcher
}

// NewNegotiator builds a negotiator over supported tags. fallback is used
// when a request expresses no usable preference; it is added to the
// supported set when missing.
func NewNegotiator(supported []language.Tag, fallback language.Tag) Negotiator {
	tags := make([]language.Tag, 0, len(supported)+1)
	tags = append(tags, fallback)
	for _, tag := range supported {
		if tag != fallback {
			tags = append(tags, tag)
		}
	}
	return Negotiator{
		supported: tags,
		fallback:  fallback,
		matcher:   language.NewMatcher(tags),
	}
}

// Fallback returns the locale used when negotiation fails.
func (n Negotiator) Fallback() language.Tag {
	return n.fallback
}

// ResolveLocale returns the best supported locale for the request's
// Accept-Language header.
func (n Negotiator) ResolveLocale(r *http.Request) language.Tag {
	if r == nil || n.matcher == nil {
		return n.fallback
	}
	header := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if header == "" {
		return n.fallback
	}
	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return n.fallback
	}
	_, index, confidence := n.matcher.Match(prefs...)
	if confidence == language.No || index < 0 || index >= len(n.supported) {
		return n.fallback
	}
	return n.supported[index]
}

// ParseLocale parses a configured locale, returning fallback when value is
// blank or malformed.
func ParseLocale(value string, fallback language.Tag) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	tag, err := language.Parse(value)
	if err != nil {
		return fallback
	}
	return tag
}

// MatchLocale maps a configured locale onto the closest supported tag, so
// "pt", "pt-br" and "PT-BR" all select pt-BR. Blank, malformed or unmatched
// values return fallback.
func MatchLocale(supported []language.Tag, value string, fallback language.Tag) language.Tag {
	if len(supported) == 0 {
		return fallback
	}
	tag := ParseLocale(value, language.Und)
	if tag == language.Und {
		return fallback
	}
	_, index, confidence := language.NewMatcher(supported).Match(tag)
	if confidence == language.No || index < 0 || index >= len(supported) {
		return fallback
	}
	return supported[index]
}
