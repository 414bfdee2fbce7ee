package services

import (
	"fmt"

	"tohuynh.dev/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	store *ContentStore
}

// NewProjectService creates a new ProjectService
func NewProjectService(store *ContentStore) *ProjectService {
	return &ProjectService{store: store}
}

// GetAll returns all projects in authored order
func (s *ProjectService) GetAll() []models.Project {
	return s.store.Get().Projects.Projects
}

// GetBySlug returns a specific project by its slug. Records are not
// de-duplicated, so when two names share a slug the first one wins.
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	projects := s.store.Get().Projects.Projects
	for i := range projects {
		if projects[i].Slug() == slug {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("project not found: %s", slug)
}
