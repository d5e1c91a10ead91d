package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/louisbranch/portfolio/internal/services/portfolio/profile"
)

// ProjectsGrid renders the projects heading and one card per project.
func ProjectsGrid(view PageView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("div", "projects")
		h.open("h2", "section-title")
		h.text(view.t("portfolio.projects.heading"))
		h.close("h2")
		h.open("div", "project-grid")
		for _, project := range view.Profile.Projects {
			h.component(ctx, ProjectCard(view, project))
		}
		h.close("div")
		h.close("div")
	})
}

// ProjectCard renders one project. Demo and Repo links render only when the
// project carries the corresponding URL.
func ProjectCard(view PageView, project profile.Project) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<article")
		h.attr("class", withClass("project", projectMotion))
		h.attr("style", projectMotion.Style())
		if project.ID != "" {
			h.attr("data-key", project.ID)
		}
		h.raw(">")
		h.open("div", "card")
		h.open("div", "project-body")

		h.open("div", "project-head")
		h.raw("<div>")
		h.open("h3", "project-title")
		h.text(project.Title)
		h.close("h3")
		h.open("p", "project-desc")
		h.text(project.Desc)
		h.close("p")
		h.raw("</div>")
		h.open("div", "project-tech")
		h.text(project.TechLabel())
		h.close("div")
		h.close("div")

		h.open("div", "project-actions")
		if project.HasDemo() {
			projectAction(h, "demo", project.Demo, view.t("portfolio.project.demo"))
		}
		if project.HasRepo() {
			projectAction(h, "repo", project.Repo, view.t("portfolio.project.repo"))
		}
		h.close("div")

		h.close("div")
		h.close("div")
		h.close("article")
	})
}

func projectAction(h *htmlWriter, action, url, label string) {
	h.raw("<a")
	h.href(url)
	h.attr("class", "project-action")
	h.attr("data-action", action)
	h.raw(">")
	h.text(label)
	h.close("a")
}
