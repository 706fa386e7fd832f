// Package storage writes uploaded review photos to a local directory
// that is served back as static files.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PhotoStore stores photos on disk under a single directory.
type PhotoStore struct {
	dir string
}

// New creates the uploads directory if it does not exist and returns a
// store over it.
func New(dir string) (*PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &PhotoStore{dir: dir}, nil
}

// Dir returns the directory photos are written to.
func (p *PhotoStore) Dir() string {
	return p.dir
}

// Save writes one photo under a unique name, keeping the original file
// extension, and returns the stored filename.
func (p *PhotoStore) Save(originalName string, data io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	name := "photos-" + uuid.NewString() + ext

	f, err := os.Create(filepath.Join(p.dir, name))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, data); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return name, nil
}

// Remove deletes a stored photo. Used to roll back aborted submissions.
func (p *PhotoStore) Remove(storedName string) error {
	return os.Remove(filepath.Join(p.dir, filepath.Base(storedName)))
}
