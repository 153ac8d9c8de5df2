// Package objectstore provides pluggable, read-only blob backends (local
// filesystem, S3, MinIO — see the s3/ and minio/ subpackages) plus the
// binary/CSV loaders that turn a blob into a model.PointSource or
// model.AttributeSource. It is the concrete home for the pluggable
// corpus sources SPEC_FULL.md's DOMAIN STACK section calls for.
package objectstore

import (
	"io"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a blob does not exist. Implementations
// should return an error that satisfies errors.Is(err, ErrNotFound).
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for opening immutable, read-only data
// files ("blobs") by name: a benchmark corpus file, an attribute CSV, a
// ground-truth file.
type BlobStore interface {
	Open(name string) (Blob, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// LocalStore implements BlobStore using the local filesystem, rooted at
// a directory. Names are joined onto root with filepath.Join.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{root: dir}
}

// Open opens name for reading.
func (s *LocalStore) Open(name string) (Blob, error) {
	f, err := os.Open(filepath.Join(s.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &localBlob{f: f, size: info.Size()}, nil
}

type localBlob struct {
	f    *os.File
	size int64
}

func (b *localBlob) ReadAt(p []byte, off int64) (int, error) { return b.f.ReadAt(p, off) }
func (b *localBlob) Close() error                            { return b.f.Close() }
func (b *localBlob) Size() int64                             { return b.size }
