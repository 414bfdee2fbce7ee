// Package views renders the site's pages from embedded html/template files.
// Every page executes the "shell" layout, which emits the document head,
// the navigation and the page's "content" block.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
)

// Page names accepted by Render
const (
	PageHome     = "home"
	PageProjects = "projects"
	PageNotFound = "notfound"
)

//go:embed templates
var templateFS embed.FS

// Renderer executes pre-parsed page templates
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the layout, partials and every page template
func NewRenderer() (*Renderer, error) {
	base, err := template.New("").Funcs(funcs).ParseFS(templateFS,
		"templates/layout/*.html",
		"templates/partials/*.html",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout templates: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list page templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		tmpl, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", f, err)
		}
		if _, err := tmpl.ParseFS(templateFS, f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f, err)
		}
		r.pages[strings.TrimSuffix(path.Base(f), ".html")] = tmpl
	}
	return r, nil
}

// Render writes the named page. Output is buffered so a failed render
// never leaves a partial document on w.
func (r *Renderer) Render(w io.Writer, page string, data *PageData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "shell", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
