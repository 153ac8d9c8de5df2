// Package minio implements objectstore.BlobStore for MinIO and other
// S3-compatible object stores, for on-prem or self-hosted benchmark
// fixture hosting.
package minio

import (
	"context"
	"io"

	miniogo "github.com/minio/minio-go/v7"

	"github.com/hupe1980/bwst/internal/objectstore"
)

// Store implements objectstore.BlobStore against a MinIO bucket.
type Store struct {
	client *miniogo.Client
	bucket string
	prefix string
}

// NewStore creates a MinIO-backed BlobStore. rootPrefix is prepended to
// every blob name.
func NewStore(client *miniogo.Client, bucket, rootPrefix string) *Store {
	return &Store{client: client, bucket: bucket, prefix: rootPrefix}
}

func (s *Store) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}

// Open reads the named object fully into memory.
func (s *Store) Open(name string) (objectstore.Blob, error) {
	key := s.key(name)
	ctx := context.Background()

	obj, err := s.client.GetObject(ctx, s.bucket, key, miniogo.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, objectstore.ErrNotFound
		}
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNotFound(err) {
			return nil, objectstore.ErrNotFound
		}
		return nil, err
	}
	return &blob{data: data}, nil
}

func isNotFound(err error) bool {
	resp := miniogo.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.Code == "NotFound"
}

type blob struct {
	data []byte
}

func (b *blob) Size() int64  { return int64(len(b.data)) }
func (b *blob) Close() error { return nil }

func (b *blob) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

var _ objectstore.BlobStore = (*Store)(nil)
