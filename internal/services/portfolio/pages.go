package portfolio

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/louisbranch/portfolio/internal/platform/i18n/catalog"
	"github.com/louisbranch/portfolio/internal/platform/icons"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/i18n"
	"github.com/louisbranch/portfolio/internal/services/portfolio/profile"
	"github.com/louisbranch/portfolio/internal/services/portfolio/templates"
)

// Pages builds localized page views of one profile.
type Pages struct {
	profile    profile.Profile
	bundle     *catalog.Bundle
	negotiator i18n.Negotiator
	icons      icons.Resolver
}

// NewPages composes a page builder. defaultLocale selects the copy used when
// a request states no supported preference. It is matched like a language
// preference, and unmatched values use the catalog base locale.
func NewPages(p profile.Profile, bundle *catalog.Bundle, glyphs icons.GlyphSet, defaultLocale string) *Pages {
	fallback := i18n.MatchLocale(bundle.Tags(), defaultLocale, bundle.Tag(catalog.BaseLocale))
	return &Pages{
		profile:    p,
		bundle:     bundle,
		negotiator: i18n.NewNegotiator(bundle.Tags(), fallback),
		icons:      icons.NewResolver(glyphs),
	}
}

// View returns the page view for locale.
func (p *Pages) View(locale language.Tag) templates.PageView {
	lang := p.bundle.Tag(locale.String()).String()
	return templates.PageView{
		Profile: p.profile,
		Lang:    lang,
		Loc:     p.bundle.Printer(lang),
		Icons:   p.icons,
	}
}

// DefaultView returns the page view for the default locale.
func (p *Pages) DefaultView() templates.PageView {
	return p.View(p.negotiator.Fallback())
}

// ViewForRequest negotiates the request locale and returns its page view.
func (p *Pages) ViewForRequest(r *http.Request) templates.PageView {
	return p.View(p.negotiator.ResolveLocale(r))
}
