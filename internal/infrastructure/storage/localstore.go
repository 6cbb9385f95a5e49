// Package storage persists attachment content on the local filesystem.
// Only attachment metadata lives in the database; the bytes live here.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes uploads under a single directory using
// "{attachmentID}_{originalFilename}" names.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("uploads directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save streams the content to disk and returns the stored path.
// The base of the original filename is used so a crafted filename
// cannot escape the uploads directory.
func (s *LocalStore) Save(attachmentID, filename string, content io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s", attachmentID, filepath.Base(filename))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return path, nil
}

// Open returns a reader over a stored file.
func (s *LocalStore) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stored file: %w", err)
	}
	return f, nil
}

// Dir returns the uploads directory.
func (s *LocalStore) Dir() string {
	return s.dir
}
