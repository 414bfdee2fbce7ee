package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tohuynh.dev/internal/models"
)

// Content file names inside the data directory
const (
	SiteFile     = "site.yaml"
	ProjectsFile = "projects.yaml"
)

// LoadContent reads and validates site.yaml and projects.yaml from dataPath
func LoadContent(dataPath string) (*models.Content, error) {
	var content models.Content

	if err := loadYAML(filepath.Join(dataPath, SiteFile), &content.Site); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dataPath, ProjectsFile), &content.Projects); err != nil {
		return nil, err
	}

	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content in %s: %w", dataPath, err)
	}
	return &content, nil
}

// loadYAML decodes a single YAML document, rejecting unknown fields
func loadYAML(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
