package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProject() Project {
	return Project{
		Name:         "Council Data Project",
		Description:  "Open-source tools for local government data.",
		URL:          "https://councildataproject.org",
		Technologies: []string{"Python", "React"},
		SourceLink:   Link{Name: "GitHub", URL: "https://github.com/CouncilDataProject/cookiecutter-cdp-deployment"},
		DocsLink:     Link{Name: "JOSS paper", URL: "https://doi.org/10.21105/joss.03904"},
	}
}

func TestProjectValidate(t *testing.T) {
	p := validProject()
	require.NoError(t, p.Validate())

	p.URL = "/relative"
	p.SourceLink.URL = "mailto:someone@example.com"
	p.DocsLink.Name = ""
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url")
	assert.Contains(t, err.Error(), "source")
	assert.Contains(t, err.Error(), "docs")
}

func TestProjectListValidateNamesRecord(t *testing.T) {
	bad := validProject()
	bad.Name = "Broken"
	bad.URL = "not a url"
	list := ProjectList{Projects: []Project{validProject(), bad}}

	err := list.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `project 1 ("Broken")`)
}

func TestProjectValidateRejectsEmptySlug(t *testing.T) {
	p := validProject()
	p.Name = "***"
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slug")

	list := ProjectList{Projects: []Project{validProject(), validProject()}}
	assert.NoError(t, list.Validate(), "duplicate records are allowed")
}

func TestProjectSlug(t *testing.T) {
	cases := map[string]string{
		"Council Data Project": "council-data-project",
		"SIGLA Database":       "sigla-database",
		"AnnoREP":              "annorep",
		"  Go & Rust!  ":       "go-rust",
	}
	for name, want := range cases {
		p := Project{Name: name}
		assert.Equal(t, want, p.Slug(), name)
	}
}

func TestValidateAbsoluteURL(t *testing.T) {
	assert.NoError(t, ValidateAbsoluteURL("https://example.com/path"))
	assert.NoError(t, ValidateAbsoluteURL("http://example.com"))
	assert.Error(t, ValidateAbsoluteURL(""))
	assert.Error(t, ValidateAbsoluteURL("example.com"))
	assert.Error(t, ValidateAbsoluteURL("https://"))
	assert.Error(t, ValidateAbsoluteURL("ftp://example.com"))
}
