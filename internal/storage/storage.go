// Package storage stores uploaded menu PDFs and serves them back by public
// URL. The store and the menu metadata rows are written in two separate,
// non-atomic steps; callers compensate on partial failure.
package storage

import (
	"context"
	"io"
)

// BlobStore is the object storage collaborator: upload a file, get back a
// publicly fetchable URL, delete by the same path.
type BlobStore interface {
	// Upload writes the blob at path and returns its public URL.
	Upload(ctx context.Context, path string, r io.Reader) (string, error)

	// Delete removes the blob at path. Deleting a missing blob is not an
	// error.
	Delete(ctx context.Context, path string) error
}
