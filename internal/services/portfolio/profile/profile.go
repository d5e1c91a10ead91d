// Package profile holds the immutable content record the portfolio page is
// rendered from.
package profile

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// TechSeparator joins a project's tech labels for display.
const TechSeparator = " • "

// projectNamespace scopes name-based project identifiers.
var projectNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://portfolio.local/projects"))

// Social holds outbound profile links. Values are opaque URLs.
type Social struct {
	LinkedIn string `yaml:"linkedin"`
	GitHub   string `yaml:"github"`
	Resume   string `yaml:"resume"`
}

// Contact holds the addresses used by the contact links.
type Contact struct {
	Email string `yaml:"email"`
}

// MailtoURL returns the mailto link for the contact email.
func (c Contact) MailtoURL() string {
	return "mailto:" + c.Email
}

// Project is one portfolio entry.
type Project struct {
	// ID is the stable list key for the project. Titles are not required to
	// be unique, so markup keys on ID instead.
	ID    string   `yaml:"-"`
	Title string   `yaml:"title"`
	Desc  string   `yaml:"desc"`
	Tech  []string `yaml:"tech"`
	Demo  string   `yaml:"demo"`
	Repo  string   `yaml:"repo"`
}

// TechLabel joins the tech labels for display. An empty list yields "".
func (p Project) TechLabel() string {
	return strings.Join(p.Tech, TechSeparator)
}

// HasDemo reports whether the demo link should render.
func (p Project) HasDemo() bool { return p.Demo != "" }

// HasRepo reports whether the repo link should render.
func (p Project) HasRepo() bool { return p.Repo != "" }

// Profile is the full display content for the page.
type Profile struct {
	Name     string    `yaml:"name"`
	Role     string    `yaml:"role"`
	Location string    `yaml:"location"`
	Intro    string    `yaml:"intro"`
	Social   Social    `yaml:"social"`
	Contact  Contact   `yaml:"contact"`
	Skills   []string  `yaml:"skills"`
	Projects []Project `yaml:"projects"`
}

// New returns p with stable project identifiers assigned and its slices
// detached from the caller's.
func New(p Profile) Profile {
	p.Skills = p.CopySkills()
	projects := p.CopyProjects()
	for i := range projects {
		projects[i].ID = ProjectID(i, projects[i].Title)
	}
	p.Projects = projects
	return p
}

// ProjectID derives the list key for the project at index with title.
// The index keeps duplicate titles on distinct keys.
func ProjectID(index int, title string) string {
	name := strconv.Itoa(index) + "/" + title
	return uuid.NewSHA1(projectNamespace, []byte(name)).String()
}

// CopySkills returns a copy of the skill labels.
func (p Profile) CopySkills() []string {
	return append([]string(nil), p.Skills...)
}

// CopyProjects returns a copy of the projects, tech labels included.
func (p Profile) CopyProjects() []Project {
	out := make([]Project, len(p.Projects))
	for i, project := range p.Projects {
		project.Tech = append([]string(nil), project.Tech...)
		out[i] = project
	}
	return out
}

// Overrides replaces content fields that deployments configure outside the
// content file.
type Overrides struct {
	ContactEmail string
	ResumeURL    string
}

// WithOverrides returns a copy of p with non-empty overrides applied.
func (p Profile) WithOverrides(o Overrides) Profile {
	out := New(p)
	if email := strings.TrimSpace(o.ContactEmail); email != "" {
		out.Contact.Email = email
	}
	if resume := strings.TrimSpace(o.ResumeURL); resume != "" {
		out.Social.Resume = resume
	}
	return out
}
