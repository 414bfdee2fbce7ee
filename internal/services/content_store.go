package services

import (
	"sync/atomic"

	"tohuynh.dev/internal/models"
)

// ContentStore holds the current content snapshot. Snapshots are never
// mutated; a reload replaces the whole snapshot.
type ContentStore struct {
	current atomic.Pointer[models.Content]
}

// NewContentStore creates a ContentStore seeded with content
func NewContentStore(content *models.Content) *ContentStore {
	s := &ContentStore{}
	s.current.Store(content)
	return s
}

// Get returns the current snapshot
func (s *ContentStore) Get() *models.Content {
	return s.current.Load()
}

// Replace swaps in a new snapshot
func (s *ContentStore) Replace(content *models.Content) {
	s.current.Store(content)
}
