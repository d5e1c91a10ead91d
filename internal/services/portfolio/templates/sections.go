package templates

import (
	"context"

	"github.com/a-h/templ"
)

// Header renders the name, the role line and the profile links.
func Header(view PageView) templ.Component {
	p := view.Profile
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("header", "portfolio-header")
		h.raw("<div>")
		h.motion("h1", "portfolio-name", nameMotion)
		h.text(p.Name)
		h.close("h1")
		h.open("p", "portfolio-role")
		h.text(p.Role + " • " + p.Location)
		h.close("p")
		h.raw("</div>")

		h.open("nav", "header-links")
		externalLink(ctx, h, view, "header-link", p.Social.LinkedIn, "Linkedin", 18, view.t("portfolio.link.linkedin"))
		externalLink(ctx, h, view, "header-link", p.Social.GitHub, "Github", 18, view.t("portfolio.link.github"))
		externalLink(ctx, h, view, "header-link", p.Social.Resume, "FileText", 18, view.t("portfolio.link.resume"))
		h.close("nav")
		h.close("header")
	})
}

// AboutCard renders the intro and one tag per skill, in order.
func AboutCard(view PageView) templ.Component {
	p := view.Profile
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("div", "card")
		h.motion("div", "", aboutMotion)
		h.open("h2", "card-title")
		h.text(view.t("portfolio.about.heading"))
		h.close("h2")
		h.open("p", "card-text")
		h.text(p.Intro)
		h.close("p")

		h.open("div", "skills")
		h.open("h3", "card-subtitle")
		h.text(view.t("portfolio.skills.heading"))
		h.close("h3")
		h.open("div", "skill-list")
		for _, skill := range p.Skills {
			h.motion("span", "skill-tag", skillMotion)
			h.text(skill)
			h.close("span")
		}
		h.close("div")
		h.close("div")

		h.close("div")
		h.close("div")
	})
}

// ContactCard renders the mail call to action.
func ContactCard(view PageView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("div", "card")
		h.open("h3", "card-subtitle")
		h.text(view.t("portfolio.contact.heading"))
		h.close("h3")
		h.open("p", "card-text")
		h.text(view.t("portfolio.contact.blurb"))
		h.close("p")
		mailLink(ctx, h, view, "button button-primary", view.t("portfolio.contact.send"))
		h.close("div")
	})
}

// DownloadCard renders the resume and GitHub buttons.
func DownloadCard(view PageView) templ.Component {
	p := view.Profile
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("div", "card")
		h.open("h4", "card-subtitle")
		h.text(view.t("portfolio.download.heading"))
		h.close("h4")
		h.open("p", "card-text")
		h.text(view.t("portfolio.download.blurb"))
		h.close("p")
		h.open("div", "button-row")
		plainLink(h, "button", p.Social.Resume, view.t("portfolio.link.resume"))
		plainLink(h, "button", p.Social.GitHub, view.t("portfolio.link.github"))
		h.close("div")
		h.close("div")
	})
}

// Footer renders the sign-off and repeats the GitHub, LinkedIn and mail links.
func Footer(view PageView) templ.Component {
	p := view.Profile
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("footer", "portfolio-footer")
		h.open("div", "card")
		h.open("div", "footer-body")
		h.raw("<div>")
		h.open("p", "footer-text")
		h.text(view.t("portfolio.footer.made_with", p.Name))
		h.close("p")
		h.open("p", "footer-tip")
		h.text(view.t("portfolio.footer.tip"))
		h.close("p")
		h.raw("</div>")
		h.open("div", "footer-links")
		externalLink(ctx, h, view, "footer-link", p.Social.GitHub, "Github", 16, view.t("portfolio.link.github"))
		externalLink(ctx, h, view, "footer-link", p.Social.LinkedIn, "Linkedin", 16, view.t("portfolio.link.linkedin"))
		mailLink(ctx, h, view, "footer-link", view.t("portfolio.link.email"))
		h.close("div")
		h.close("div")
		h.close("div")
		h.close("footer")
	})
}

func externalLink(ctx context.Context, h *htmlWriter, view PageView, class, url, icon string, size int, label string) {
	h.raw("<a")
	h.href(url)
	h.raw(` target="_blank" rel="noreferrer"`)
	h.attr("class", class)
	h.raw(">")
	h.component(ctx, view.Icons.Icon(view.icon(icon, size)))
	h.raw(" ")
	h.open("span", "link-label")
	h.text(label)
	h.close("span")
	h.close("a")
}

func mailLink(ctx context.Context, h *htmlWriter, view PageView, class, label string) {
	h.raw("<a")
	h.attr("class", class)
	h.href(view.Profile.Contact.MailtoURL())
	h.raw(">")
	h.component(ctx, view.Icons.Icon(view.icon("Mail", 16)))
	h.raw(" ")
	h.open("span", "link-label")
	h.text(label)
	h.close("span")
	h.close("a")
}

func plainLink(h *htmlWriter, class, url, label string) {
	h.raw("<a")
	h.href(url)
	h.attr("class", class)
	h.raw(">")
	h.text(label)
	h.close("a")
}
