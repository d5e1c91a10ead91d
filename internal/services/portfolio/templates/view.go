package templates

import (
	"golang.org/x/text/message"

	"github.com/louisbranch/portfolio/internal/platform/icons"
	"github.com/louisbranch/portfolio/internal/services/portfolio/profile"
)

// DefaultStylesheetURL is where the server mounts the page stylesheet.
const DefaultStylesheetURL = "/static/portfolio.css"

// Localizer formats catalog messages. *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, a ...any) string
}

// PageView is everything the page renders from.
type PageView struct {
	Profile profile.Profile
	// Lang is the BCP 47 tag of the copy Loc produces.
	Lang          string
	Loc           Localizer
	Icons         icons.Resolver
	StylesheetURL string
}

// Title returns the document title for the view.
func (v PageView) Title() string {
	switch {
	case v.Profile.Name == "":
		return v.Profile.Role
	case v.Profile.Role == "":
		return v.Profile.Name
	default:
		return v.Profile.Name + " | " + v.Profile.Role
	}
}

func (v PageView) t(key string, args ...any) string {
	if v.Loc == nil {
		return key
	}
	return v.Loc.Sprintf(key, args...)
}

func (v PageView) stylesheet() string {
	if v.StylesheetURL == "" {
		return DefaultStylesheetURL
	}
	return v.StylesheetURL
}

func (v PageView) icon(name string, size int) icons.Props {
	return icons.Props{Name: name, Size: size}
}
