package views

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"tohuynh.dev/internal/config"
	"tohuynh.dev/internal/markup"
	"tohuynh.dev/internal/models"
	"tohuynh.dev/internal/nav"
)

// PageData is the view model executed by the shell layout
type PageData struct {
	Meta       models.SiteMeta
	Title      string
	Path       string
	Nav        []nav.RenderedItem
	ThemeMode  string
	ThemeCSS   template.CSS
	Analytics  template.HTML
	PaddingTop string
	Content    any
}

// FullTitle is the document title: "Page | Site", or just the site title
func (d *PageData) FullTitle() string {
	if d.Title == "" || d.Title == d.Meta.Title {
		return d.Meta.Title
	}
	return d.Title + " | " + d.Meta.Title
}

// CanonicalURL joins the configured site URL with the page path
func (d *PageData) CanonicalURL() string {
	if d.Meta.URL == "" {
		return ""
	}
	return strings.TrimRight(d.Meta.URL, "/") + d.Path
}

// ProjectCard is the rendered form of one project record
type ProjectCard struct {
	Title        template.HTML
	Description  template.HTML
	URL          string
	Technologies []string
	Source       models.Link
	Docs         models.Link
}

// NewProjectCard renders a project's Markdown fields. The heading uses the
// label when present and falls back to the name as plain text. The heading
// sits inside the card link, so the label never contains anchors.
func NewProjectCard(p models.Project, md *markup.Renderer) (ProjectCard, error) {
	title := template.HTML(template.HTMLEscapeString(p.Name))
	if strings.TrimSpace(p.Label) != "" {
		label, err := md.Label(p.Label)
		if err != nil {
			return ProjectCard{}, fmt.Errorf("project %q label: %w", p.Name, err)
		}
		title = label
	}
	desc, err := md.Inline(p.Description)
	if err != nil {
		return ProjectCard{}, fmt.Errorf("project %q description: %w", p.Name, err)
	}
	return ProjectCard{
		Title:        title,
		Description:  desc,
		URL:          p.URL,
		Technologies: p.Technologies,
		Source:       p.SourceLink,
		Docs:         p.DocsLink,
	}, nil
}

// ProjectsContent is the content of the projects page
type ProjectsContent struct {
	Cards []ProjectCard
}

// NewProjectsContent maps every record to a card, keeping order and duplicates
func NewProjectsContent(projects []models.Project, md *markup.Renderer) (*ProjectsContent, error) {
	cards := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		card, err := NewProjectCard(p, md)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return &ProjectsContent{Cards: cards}, nil
}

// Contact is a rendered home page contact button
type Contact struct {
	Name     string
	URL      string
	Icon     string
	External bool
}

// HomeContent is the content of the home page
type HomeContent struct {
	Name     string
	Headline template.HTML
	Body     template.HTML
	Contacts []Contact
}

// NewHomeContent renders the profile. Contacts with an http(s) URL open in
// a new browsing context; mailto links do not.
func NewHomeContent(p models.Profile, md *markup.Renderer) (*HomeContent, error) {
	headline, err := md.Inline(p.Headline)
	if err != nil {
		return nil, fmt.Errorf("profile headline: %w", err)
	}
	body, err := md.Block(p.Body)
	if err != nil {
		return nil, fmt.Errorf("profile body: %w", err)
	}

	contacts := make([]Contact, 0, len(p.Contacts))
	for _, c := range p.Contacts {
		u, err := url.Parse(c.URL)
		external := err == nil && (u.Scheme == "http" || u.Scheme == "https")
		contacts = append(contacts, Contact{Name: c.Name, URL: c.URL, Icon: c.Icon, External: external})
	}

	return &HomeContent{Name: p.Name, Headline: headline, Body: body, Contacts: contacts}, nil
}

// ThemeCSS renders the theme as CSS custom property declarations
func ThemeCSS(t config.Theme) template.CSS {
	vars := []struct{ name, value string }{
		{"--color-background", t.Background},
		{"--color-surface", t.Surface},
		{"--color-text", t.Text},
		{"--color-text-secondary", t.TextSecondary},
		{"--color-accent", t.Accent},
		{"--color-error", t.Error},
	}
	var b strings.Builder
	if t.Mode != "" {
		fmt.Fprintf(&b, "color-scheme: %s; ", cssValue(t.Mode))
	}
	for _, v := range vars {
		if v.value == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s; ", v.name, cssValue(v.value))
	}
	return template.CSS(strings.TrimSpace(b.String()))
}

// cssValue strips characters that could end a declaration or the style block
func cssValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '"', '\'', '\\':
			return -1
		}
		return r
	}, s)
}
