package models

import (
	"errors"
	"fmt"
	"strings"
)

// Icon is a favicon entry rendered as a <link> in the document head
type Icon struct {
	Rel   string `yaml:"rel" json:"-"`
	Href  string `yaml:"href" json:"src"`
	Type  string `yaml:"type,omitempty" json:"type,omitempty"`
	Sizes string `yaml:"sizes,omitempty" json:"sizes,omitempty"`
}

// SiteMeta holds document head metadata shared by every page
type SiteMeta struct {
	Title         string `yaml:"title"`
	ShortName     string `yaml:"short_name"`
	Description   string `yaml:"description"`
	URL           string `yaml:"url"`
	Author        string `yaml:"author"`
	Image         string `yaml:"image"`
	TwitterHandle string `yaml:"twitter_handle"`
	ThemeColor    string `yaml:"theme_color"`
	Icons         []Icon `yaml:"icons"`
	Manifest      string `yaml:"manifest"`
}

// ContactLink is an icon button on the home page
type ContactLink struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Icon string `yaml:"icon"`
}

// Profile is the home page content
type Profile struct {
	Name     string        `yaml:"name"`
	Headline string        `yaml:"headline"`
	Body     string        `yaml:"body"`
	Contacts []ContactLink `yaml:"contacts"`
}

// Site is the full content document loaded from site.yaml
type Site struct {
	Meta    SiteMeta `yaml:"meta"`
	Profile Profile  `yaml:"profile"`
}

// Validate checks the fields every page depends on
func (s *Site) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Meta.Title) == "" {
		errs = append(errs, errors.New("meta.title is required"))
	}
	if s.Meta.URL != "" {
		if err := ValidateAbsoluteURL(s.Meta.URL); err != nil {
			errs = append(errs, fmt.Errorf("meta.url: %w", err))
		}
	}
	if strings.TrimSpace(s.Profile.Name) == "" {
		errs = append(errs, errors.New("profile.name is required"))
	}
	for i, c := range s.Profile.Contacts {
		if c.Name == "" || c.URL == "" {
			errs = append(errs, fmt.Errorf("profile.contacts[%d]: name and url are required", i))
		}
	}
	return errors.Join(errs...)
}
