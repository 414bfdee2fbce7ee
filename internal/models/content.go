package models

import "errors"

// Content is an immutable snapshot of everything loaded from the data directory
type Content struct {
	Site     Site
	Projects ProjectList
}

// Validate checks the site document and every project record
func (c *Content) Validate() error {
	return errors.Join(c.Site.Validate(), c.Projects.Validate())
}
