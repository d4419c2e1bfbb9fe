package ports

import "io"

// DatasetStore defines the filesystem operations the validator needs
type DatasetStore interface {
	// Directory queries
	DirExists(path string) (bool, error)
	ListFiles(dir string) ([]string, error) // plain file names, directories excluded

	// File operations
	Exists(path string) (bool, error)
	Size(path string) (int64, error)
	Open(path string) (io.ReadCloser, error)
	Remove(path string) error
}
