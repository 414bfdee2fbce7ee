package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Link is a named external link
type Link struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Project represents a showcased portfolio project.
// Label and Description hold inline Markdown.
type Project struct {
	Name         string   `yaml:"name" json:"name"`
	Label        string   `yaml:"label,omitempty" json:"label,omitempty"`
	Description  string   `yaml:"description" json:"description"`
	URL          string   `yaml:"url" json:"url"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	SourceLink   Link     `yaml:"source" json:"source"`
	DocsLink     Link     `yaml:"docs" json:"docs"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `yaml:"projects" json:"projects"`
}

// Slug returns the URL-safe identifier derived from the project name
func (p *Project) Slug() string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(p.Name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Validate checks that the record is complete and every link is absolute
func (p *Project) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	} else if p.Slug() == "" {
		errs = append(errs, fmt.Errorf("name %q has no letters or digits to build a slug from", p.Name))
	}
	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, errors.New("description is required"))
	}
	if err := ValidateAbsoluteURL(p.URL); err != nil {
		errs = append(errs, fmt.Errorf("url: %w", err))
	}
	if err := p.SourceLink.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("source: %w", err))
	}
	if err := p.DocsLink.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("docs: %w", err))
	}
	return errors.Join(errs...)
}

// Validate checks that the link has a name and an absolute URL
func (l Link) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("name is required")
	}
	return ValidateAbsoluteURL(l.URL)
}

// Validate checks every project and reports errors per record
func (pl *ProjectList) Validate() error {
	var errs []error
	for i := range pl.Projects {
		if err := pl.Projects[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("project %d (%q): %w", i, pl.Projects[i].Name, err))
		}
	}
	return errors.Join(errs...)
}

// ValidateAbsoluteURL reports whether raw is a well-formed absolute http(s) URL
func ValidateAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must be absolute http(s)", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}
