// Package nav resolves the site navigation against the current route.
package nav

import "strings"

// Item is a static navigation entry
type Item struct {
	Label string
	Href  string
}

// RenderedItem is an Item with its highlight state for the current path
type RenderedItem struct {
	Item
	Active bool
}

// Default is the site navigation in display order
var Default = []Item{
	{Label: "Home", Href: "/"},
	{Label: "Projects", Href: "/projects"},
}

// Resolve marks the first item whose Href matches path as active.
// When nothing matches, the first item is active. Order is preserved.
func Resolve(items []Item, path string) []RenderedItem {
	out := make([]RenderedItem, len(items))
	active := -1
	target := Normalize(path)
	for i, it := range items {
		out[i] = RenderedItem{Item: it}
		if active < 0 && Normalize(it.Href) == target {
			active = i
		}
	}
	if active < 0 {
		active = 0
	}
	if len(out) > 0 {
		out[active].Active = true
	}
	return out
}

// Normalize returns the canonical form of a route path: "/" for empty and
// no trailing slash otherwise.
func Normalize(p string) string {
	if p == "" {
		return "/"
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			return "/"
		}
	}
	return p
}
