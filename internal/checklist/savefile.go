package checklist

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/creodex/creo-checklist/internal/platform"
)

// DefaultSaveFileName is the quick-save file kept beside the catalog
const DefaultSaveFileName = "checklist_save.json"

// ErrNoSave is returned when loading from a path that has no save file
var ErrNoSave = errors.New("no saved checklist file was found")

// DefaultSavePath returns the quick-save location for a catalog directory
func DefaultSavePath(catalogDir string) string {
	return filepath.Join(catalogDir, DefaultSaveFileName)
}

// Write encodes the store to w and returns the number of entries written
func Write(w io.Writer, s *Store) (int, error) {
	data, err := s.Marshal()
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(data); err != nil {
		return 0, fmt.Errorf("write save file: %w", err)
	}
	return s.Len(), nil
}

// Read decodes a save file from r into the store
func Read(r io.Reader, s *Store) (LoadResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return LoadResult{}, fmt.Errorf("read save file: %w", err)
	}
	return s.Unmarshal(data)
}

// SaveFileAt writes the store to path, replacing any previous file atomically
func SaveFileAt(path string, s *Store) (int, error) {
	data, err := s.Marshal()
	if err != nil {
		return 0, err
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return 0, fmt.Errorf("create save directory: %w", err)
	}
	if err := platform.WriteFileAtomic(path, data); err != nil {
		return 0, fmt.Errorf("write save file: %w", err)
	}
	return s.Len(), nil
}

// LoadFileAt reads the save file at path into the store.
// A missing file yields ErrNoSave and leaves the store untouched.
func LoadFileAt(path string, s *Store) (LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return LoadResult{}, ErrNoSave
		}
		return LoadResult{}, fmt.Errorf("read save file: %w", err)
	}
	return s.Unmarshal(data)
}
