package persist

import (
	"errors"
	"fmt"
	"os"

	"github.com/ytget/launchgrid/internal/model"
	"github.com/ytget/launchgrid/internal/platform"
)

// Repository loads and saves layouts
type Repository interface {
	Load() ([]model.Element, error)
	Save(elements []model.Element) error
}

// FileRepository keeps the layout in a single JSON file
type FileRepository struct {
	path string
}

// NewFileRepository creates a repository backed by path
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the layout file location
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the saved layout. A missing or unreadable file, or one that
// fails validation, is reported as ErrNoLayout wrapping the cause.
func (r *FileRepository) Load() ([]model.Element, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoLayout, err)
	}
	elements, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoLayout, err)
	}
	return elements, nil
}

// Save replaces the layout file atomically
func (r *FileRepository) Save(elements []model.Element) error {
	data, err := Encode(elements)
	if err != nil {
		return err
	}
	if err := platform.WriteFileAtomic(r.path, data); err != nil {
		return fmt.Errorf("save layout: %w", err)
	}
	return nil
}

// Remove deletes the saved layout. A missing file is not an error.
func (r *FileRepository) Remove() error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove layout: %w", err)
	}
	return nil
}
