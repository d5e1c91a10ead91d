package templates

import (
	"context"

	"github.com/a-h/templ"
)

// MountedMarker is the text of the smoke-mount marker node.
const MountedMarker = "mounted"

// Document wraps body in the full HTML document for view.
func Document(view PageView, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<!doctype html><html")
		if view.Lang != "" {
			h.attr("lang", view.Lang)
		}
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(view.Title())
		h.raw(`</title><link rel="stylesheet"`)
		h.attr("href", view.stylesheet())
		h.raw(`></head><body>`)
		h.component(ctx, body)
		h.raw(`</body></html>`)
	})
}

// Page renders the portfolio body: header plus the two-column main area.
func Page(view PageView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("div", "portfolio")
		h.open("div", "portfolio-container")
		h.component(ctx, Header(view))
		h.open("main", "portfolio-grid")

		h.open("section", "column column-side")
		h.component(ctx, AboutCard(view))
		h.component(ctx, ContactCard(view))
		h.component(ctx, DownloadCard(view))
		h.close("section")

		h.open("section", "column column-main")
		h.component(ctx, ProjectsGrid(view))
		h.component(ctx, Footer(view))
		h.close("section")

		h.close("main")
		h.close("div")
		h.close("div")
	})
}

// FullPage renders Page inside Document.
func FullPage(view PageView) templ.Component {
	return Document(view, Page(view))
}

// SmokeMount renders the page followed by a hidden marker node that
// automated checks look for.
func SmokeMount(view PageView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<div>")
		h.component(ctx, Page(view))
		h.raw(`<div style="display:none" data-testid="portfolio-mounted">`)
		h.text(MountedMarker)
		h.raw("</div></div>")
	})
}
