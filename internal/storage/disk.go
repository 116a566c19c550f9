package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/declanmoran/omahonys-pub/internal/config"
)

// DiskStore is a BlobStore backed by a local directory, served under a
// public URL prefix by the HTTP server.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates the storage directory if needed and returns a store.
func NewDiskStore(cfg config.StorageConfig) (*DiskStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", cfg.Dir, err)
	}
	return &DiskStore{
		dir:     cfg.Dir,
		baseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Dir returns the directory files are written to.
func (s *DiskStore) Dir() string { return s.dir }

// Upload writes the blob at path and returns its public URL.
func (s *DiskStore) Upload(ctx context.Context, path string, r io.Reader) (string, error) {
	full, err := s.resolve(path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create blob dir: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create blob %s: %w", path, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return "", fmt.Errorf("write blob %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("close blob %s: %w", path, err)
	}

	return s.baseURL + "/" + path, nil
}

// Delete removes the blob at path. A missing blob is not an error.
func (s *DiskStore) Delete(ctx context.Context, path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob %s: %w", path, err)
	}
	return nil
}

// resolve joins path under the storage dir and rejects traversal outside it.
func (s *DiskStore) resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("blob path is empty")
	}
	full := filepath.Join(s.dir, filepath.FromSlash(path))
	rel, err := filepath.Rel(s.dir, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("blob path %q escapes storage dir", path)
	}
	return full, nil
}
