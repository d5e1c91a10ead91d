package templates

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/louisbranch/portfolio/internal/platform/i18n/catalog"
	"github.com/louisbranch/portfolio/internal/platform/icons"
	"github.com/louisbranch/portfolio/internal/services/portfolio/profile"
)

func TestPageRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	view := testView(t, profile.Default(), "pt-BR")
	first := render(t, FullPage(view))
	second := render(t, FullPage(view))
	if first != second {
		t.Fatal("expected identical output for identical profile")
	}
}

func TestPageRenderMatchesAcrossEqualProfiles(t *testing.T) {
	t.Parallel()

	a := render(t, Page(testView(t, profile.Default(), "en-US")))
	b := render(t, Page(testView(t, profile.Default(), "en-US")))
	if a != b {
		t.Fatal("expected equal profiles to render identically")
	}
}

func TestProjectCardActionLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		project profile.Project
		want    int
		actions []string
	}{
		{name: "none", project: profile.Project{Title: "A"}, want: 0},
		{name: "repo only", project: profile.Project{Title: "A", Repo: "https://example.com/r"}, want: 1, actions: []string{"repo"}},
		{name: "demo only", project: profile.Project{Title: "A", Demo: "https://example.com/d"}, want: 1, actions: []string{"demo"}},
		{name: "both", project: profile.Project{Title: "A", Demo: "https://example.com/d", Repo: "https://example.com/r"}, want: 2, actions: []string{"demo", "repo"}},
	}
	view := testView(t, profile.Profile{}, "en-US")
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := render(t, ProjectCard(view, tc.project))
			if n := strings.Count(got, `class="project-action"`); n != tc.want {
				t.Fatalf("action links = %d, want %d: %s", n, tc.want, got)
			}
			for _, action := range tc.actions {
				if !strings.Contains(got, `data-action="`+action+`"`) {
					t.Fatalf("missing %s action: %s", action, got)
				}
			}
			if !strings.Contains(got, `class="project-actions"`) {
				t.Fatalf("expected actions container regardless of links: %s", got)
			}
		})
	}
}

func TestProjectCardTechLabel(t *testing.T) {
	t.Parallel()

	view := testView(t, profile.Profile{}, "en-US")
	got := render(t, ProjectCard(view, profile.Project{Title: "A", Tech: []string{"React", "TypeScript"}}))
	if !strings.Contains(got, `<div class="project-tech">React • TypeScript</div>`) {
		t.Fatalf("expected joined tech label: %s", got)
	}

	empty := render(t, ProjectCard(view, profile.Project{Title: "A"}))
	if !strings.Contains(empty, `<div class="project-tech"></div>`) {
		t.Fatalf("expected empty tech label: %s", empty)
	}
}

func TestPageRendersDuplicateTitles(t *testing.T) {
	t.Parallel()

	p := profile.New(profile.Profile{
		Name: "Ada",
		Projects: []profile.Project{
			{Title: "Same", Desc: "first"},
			{Title: "Same", Desc: "second"},
		},
	})
	got := render(t, Page(testView(t, p, "en-US")))
	if n := strings.Count(got, `<h3 class="project-title">Same</h3>`); n != 2 {
		t.Fatalf("rendered %d cards for duplicate titles, want 2", n)
	}
	for _, project := range p.Projects {
		if !strings.Contains(got, `data-key="`+project.ID+`"`) {
			t.Fatalf("missing key %s", project.ID)
		}
	}
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Fatal("expected both descriptions")
	}
}

func TestSmokeMountLeavesMarker(t *testing.T) {
	t.Parallel()

	got := render(t, SmokeMount(testView(t, profile.Default(), "pt-BR")))
	if !strings.Contains(got, `<div style="display:none" data-testid="portfolio-mounted">mounted</div>`) {
		t.Fatalf("missing mounted marker")
	}
	if !strings.Contains(got, "Isabela Sucharski") {
		t.Fatal("expected page content in smoke mount")
	}
}

func TestHeaderRendersLinksWithIcons(t *testing.T) {
	t.Parallel()

	p := profile.Default()
	got := render(t, Header(testView(t, p, "pt-BR")))
	for _, want := range []string{
		`<h1 class="portfolio-name motion motion-slide-down" style="animation-duration:0.4s;animation-delay:0s">Isabela Sucharski</h1>`,
		`Frontend Developer (React, TypeScript) • Curitiba, Brazil`,
		`href="` + p.Social.LinkedIn + `"`,
		`href="` + p.Social.GitHub + `"`,
		`data-icon="linkedin"`,
		`data-icon="github"`,
		`data-icon="file-text"`,
		`target="_blank" rel="noreferrer"`,
		`width="18"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("header missing %q: %s", want, got)
		}
	}
}

func TestAboutCardRendersSkillsInOrder(t *testing.T) {
	t.Parallel()

	p := profile.New(profile.Profile{Intro: "Hello", Skills: []string{"Go", "SQL", "HTML & CSS"}})
	got := render(t, AboutCard(testView(t, p, "pt-BR")))
	if !strings.Contains(got, "Sobre") {
		t.Fatalf("expected pt-BR heading: %s", got)
	}
	goIdx := strings.Index(got, ">Go</span>")
	sqlIdx := strings.Index(got, ">SQL</span>")
	htmlIdx := strings.Index(got, ">HTML &amp; CSS</span>")
	if goIdx < 0 || sqlIdx < 0 || htmlIdx < 0 {
		t.Fatalf("missing skill tags: %s", got)
	}
	if !(goIdx < sqlIdx && sqlIdx < htmlIdx) {
		t.Fatalf("skills out of order: %s", got)
	}
	if n := strings.Count(got, `class="skill-tag motion motion-fade-in"`); n != 3 {
		t.Fatalf("skill tags = %d, want 3", n)
	}
}

func TestContactAndFooterUseContactEmail(t *testing.T) {
	t.Parallel()

	p := profile.Default().WithOverrides(profile.Overrides{ContactEmail: "hello@example.org"})
	view := testView(t, p, "en-US")
	for _, c := range []templ.Component{ContactCard(view), Footer(view)} {
		got := render(t, c)
		if !strings.Contains(got, `href="mailto:hello@example.org"`) {
			t.Fatalf("expected mailto link: %s", got)
		}
		if !strings.Contains(got, `data-icon="mail"`) {
			t.Fatalf("expected mail icon: %s", got)
		}
	}
}

func TestDownloadCardRendersPlainButtons(t *testing.T) {
	t.Parallel()

	p := profile.Default().WithOverrides(profile.Overrides{ResumeURL: "https://example.org/cv.pdf"})
	got := render(t, DownloadCard(testView(t, p, "en-US")))
	if !strings.Contains(got, `<a href="https://example.org/cv.pdf" class="button">CV</a>`) {
		t.Fatalf("expected resume button: %s", got)
	}
	if strings.Contains(got, "<svg") {
		t.Fatalf("download buttons should not carry icons: %s", got)
	}
}

func TestFooterFormatsName(t *testing.T) {
	t.Parallel()

	got := render(t, Footer(testView(t, profile.Default(), "pt-BR")))
	if !strings.Contains(got, "Feito com ❤️ por Isabela Sucharski — open to freelance &amp; full-time.") {
		t.Fatalf("unexpected footer: %s", got)
	}
}

func TestPageLocalizesCopy(t *testing.T) {
	t.Parallel()

	en := render(t, Page(testView(t, profile.Default(), "en-US")))
	pt := render(t, Page(testView(t, profile.Default(), "pt-BR")))
	if !strings.Contains(en, ">Projects</h2>") {
		t.Fatal("expected English projects heading")
	}
	if !strings.Contains(pt, ">Projetos</h2>") {
		t.Fatal("expected Portuguese projects heading")
	}
}

func TestPageWithoutGlyphsOrLocalizer(t *testing.T) {
	t.Parallel()

	view := PageView{Profile: profile.Default()}
	got := render(t, Page(view))
	if !strings.Contains(got, `data-icon-fallback="true"`) {
		t.Fatal("expected icon fallbacks without a glyph set")
	}
	if !strings.Contains(got, ">LI</span>") || !strings.Contains(got, ">GI</span>") {
		t.Fatalf("expected initials fallbacks: %s", got)
	}
	if !strings.Contains(got, "portfolio.about.heading") {
		t.Fatal("expected message keys without a localizer")
	}
}

func TestLinksAreSanitized(t *testing.T) {
	t.Parallel()

	view := testView(t, profile.Profile{}, "en-US")
	got := render(t, ProjectCard(view, profile.Project{Title: "A", Demo: "javascript:alert(1)"}))
	if strings.Contains(got, "javascript:") {
		t.Fatalf("unsafe URL rendered: %s", got)
	}
	if n := strings.Count(got, `class="project-action"`); n != 1 {
		t.Fatalf("expected demo link to render with sanitized href: %s", got)
	}
}

func TestDocumentWrapsBody(t *testing.T) {
	t.Parallel()

	view := testView(t, profile.New(profile.Profile{Name: "Ada <Dev>", Role: "Engineer"}), "en-US")
	got := render(t, Document(view, templ.Raw(`<p id="body">x</p>`)))
	for _, want := range []string{
		"<!doctype html>",
		`<html lang="en-US">`,
		"<title>Ada &lt;Dev&gt; | Engineer</title>",
		`href="/static/portfolio.css"`,
		`<body><p id="body">x</p></body>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("document missing %q: %s", want, got)
		}
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p    profile.Profile
		want string
	}{
		{p: profile.Profile{Name: "A", Role: "B"}, want: "A | B"},
		{p: profile.Profile{Name: "A"}, want: "A"},
		{p: profile.Profile{Role: "B"}, want: "B"},
	}
	for _, tc := range tests {
		if got := (PageView{Profile: tc.p}).Title(); got != tc.want {
			t.Fatalf("Title() = %q, want %q", got, tc.want)
		}
	}
}

func TestMotion(t *testing.T) {
	t.Parallel()

	m := Motion{Effect: EffectSlideUp, Duration: 300 * time.Millisecond, Delay: 50 * time.Millisecond}
	if got := m.Class(); got != "motion motion-slide-up" {
		t.Fatalf("Class() = %q", got)
	}
	if got := m.Style(); got != "animation-duration:0.3s;animation-delay:0.05s" {
		t.Fatalf("Style() = %q", got)
	}
	if (Motion{}).Class() != "" || (Motion{}).Style() != "" {
		t.Fatal("expected empty motion to render nothing")
	}
}

func TestConcurrentRendersDoNotInterfere(t *testing.T) {
	t.Parallel()

	bundle := loadBundle(t)
	profiles := []profile.Profile{
		profile.Default(),
		profile.New(profile.Profile{Name: "Ada", Skills: []string{"Go"}}),
	}
	want := make([]string, len(profiles))
	for i, p := range profiles {
		want[i] = render(t, FullPage(viewFor(bundle, p, "en-US")))
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			idx := i % len(profiles)
			var b strings.Builder
			if err := FullPage(viewFor(bundle, profiles[idx], "en-US")).Render(context.Background(), &b); err != nil {
				errs <- err.Error()
				return
			}
			if b.String() != want[idx] {
				errs <- "output mismatch"
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestRenderPropagatesWriterErrors(t *testing.T) {
	t.Parallel()

	err := FullPage(testView(t, profile.Default(), "en-US")).Render(context.Background(), failingWriter{})
	if err == nil {
		t.Fatal("expected writer error")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

var errWrite = writeError("write failed")

type writeError string

func (e writeError) Error() string { return string(e) }

func loadBundle(t *testing.T) *catalog.Bundle {
	t.Helper()
	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	return bundle
}

func viewFor(bundle *catalog.Bundle, p profile.Profile, locale string) PageView {
	return PageView{
		Profile: p,
		Lang:    locale,
		Loc:     bundle.Printer(locale),
		Icons:   icons.NewResolver(icons.Lucide()),
	}
}

func testView(t *testing.T, p profile.Profile, locale string) PageView {
	t.Helper()
	return viewFor(loadBundle(t), p, locale)
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}
