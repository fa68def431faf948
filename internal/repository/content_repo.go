package repository

import (
	"fmt"

	"wildcats_backend/internal/model"
	"wildcats_backend/internal/store"
)

const contentCollection = "content"

// ContentRepository defines operations for keyed site content.
type ContentRepository interface {
	// Set stores the entry for a location, overwriting any previous value.
	Set(location string, entry model.ContentEntry) error
	FindAll() (map[string]model.ContentEntry, error)
}

type contentRepository struct {
	store *store.Store
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(s *store.Store) ContentRepository {
	return &contentRepository{store: s}
}

func (r *contentRepository) Set(location string, entry model.ContentEntry) error {
	err := r.store.Update(contentCollection, func(load func(interface{}) error, save func(interface{}) error) error {
		content := make(map[string]model.ContentEntry)
		if err := load(&content); err != nil {
			return err
		}
		content[location] = entry
		return save(content)
	})
	if err != nil {
		return fmt.Errorf("failed to set content: %w", err)
	}
	return nil
}

func (r *contentRepository) FindAll() (map[string]model.ContentEntry, error) {
	content := make(map[string]model.ContentEntry)
	if err := r.store.Load(contentCollection, &content); err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return content, nil
}
