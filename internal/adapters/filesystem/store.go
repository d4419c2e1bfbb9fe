package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"yolocheck/internal/ports"
)

// Store implements ports.DatasetStore on top of an afero filesystem
type Store struct {
	fs afero.Fs
}

// Ensure Store implements DatasetStore
var _ ports.DatasetStore = (*Store)(nil)

// NewStore creates a store over any afero filesystem (e.g. afero.NewMemMapFs in tests)
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOSStore creates a store over the real filesystem
func NewOSStore() *Store {
	return NewStore(afero.NewOsFs())
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// DirExists reports whether path exists and is a directory
func (s *Store) DirExists(path string) (bool, error) {
	ok, err := afero.DirExists(s.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return ok, nil
}

// ListFiles returns the names of regular entries in dir, sorted by name
func (s *Store) ListFiles(dir string) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Exists reports whether a file exists at path
func (s *Store) Exists(path string) (bool, error) {
	ok, err := afero.Exists(s.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return ok, nil
}

// Size returns the size of the file at path in bytes
func (s *Store) Size(path string) (int64, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.Size(), nil
}

// Open opens a file for reading; the caller must close it
func (s *Store) Open(path string) (io.ReadCloser, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// Remove deletes a single file
func (s *Store) Remove(path string) error {
	if err := s.fs.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("already removed %s: %w", path, err)
		}
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
