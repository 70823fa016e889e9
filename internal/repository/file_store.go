package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lumina-reserve/backend/internal/models"
)

// FileOverrideStore persists the override entry as a JSON file
type FileOverrideStore struct {
	path string
}

// NewFileOverrideStore creates a store backed by the file at path.
// The file and its directory are created on first save.
func NewFileOverrideStore(path string) *FileOverrideStore {
	return &FileOverrideStore{path: path}
}

// Load reads the file. A missing file is an empty list.
func (s *FileOverrideStore) Load(ctx context.Context) ([]models.Event, error) {
	const op = "repository.FileOverrideStore.Load"

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Event{}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	events, err := decodeOverrides(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return events, nil
}

// Save rewrites the file through a temp file and rename
func (s *FileOverrideStore) Save(ctx context.Context, events []models.Event) error {
	const op = "repository.FileOverrideStore.Save"

	data, err := encodeOverrides(events)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
