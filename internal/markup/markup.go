// Package markup turns the inline Markdown used in content files into
// sanitized HTML. Absolute links open in a new browsing context with
// rel="noreferrer noopener".
package markup

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown to safe HTML
type Renderer struct {
	md          goldmark.Markdown
	policy      *bluemonday.Policy
	labelPolicy *bluemonday.Policy
}

// NewRenderer creates a Renderer with the site's sanitization policy
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
		// Raw HTML such as <abbr> is allowed through goldmark and filtered by the policy.
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
	return &Renderer{md: md, policy: newPolicy(), labelPolicy: newLabelPolicy()}
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	// AllowStandardURLs turns on rel="nofollow"; external links carry exactly "noreferrer noopener".
	p.RequireNoFollowOnLinks(false)
	p.AllowElements("p", "br", "em", "strong", "code", "abbr", "del", "ul", "ol", "li")
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("title").OnElements("abbr", "a")
	p.RequireNoReferrerOnFullyQualifiedLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// newLabelPolicy keeps text-level formatting only. Labels sit inside the
// card's own link, so anchors are dropped and their text kept.
func newLabelPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("em", "strong", "code", "abbr", "del")
	p.AllowAttrs("title").OnElements("abbr")
	return p
}

// Block renders src as block-level HTML
func (r *Renderer) Block(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// Label renders src for use inside a link: inline formatting survives,
// links and block elements do not.
func (r *Renderer) Label(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return template.HTML(strings.TrimSpace(r.labelPolicy.Sanitize(buf.String()))), nil
}

// Inline renders src and unwraps a single enclosing paragraph so the
// result can sit inside headings and other inline contexts.
func (r *Renderer) Inline(src string) (template.HTML, error) {
	out, err := r.Block(src)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(out))
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		s = strings.TrimSuffix(strings.TrimPrefix(s, "<p>"), "</p>")
	}
	return template.HTML(s), nil
}
