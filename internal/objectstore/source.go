package objectstore

import (
	"fmt"

	"github.com/hupe1980/bwst/model"
)

// PointSource implements model.PointSource over a blob named by a
// BlobStore, read fully into memory on first use. Build only ever reads
// a PointSource once, so there is no benefit to lazily re-fetching rows
// that have already been decoded.
type PointSource struct {
	store BlobStore
	name  string

	vectors [][]float32
	dim     int
	loaded  bool
}

// NewPointSource returns a PointSource that lazily loads name from
// store on first Len/Dim/Point call.
func NewPointSource(store BlobStore, name string) *PointSource {
	return &PointSource{store: store, name: name}
}

func (s *PointSource) ensure() error {
	if s.loaded {
		return nil
	}
	vectors, dim, err := ReadVectors(s.store, s.name)
	if err != nil {
		return err
	}
	s.vectors, s.dim, s.loaded = vectors, dim, true
	return nil
}

func (s *PointSource) Len() (int, error) {
	if err := s.ensure(); err != nil {
		return 0, err
	}
	return len(s.vectors), nil
}

func (s *PointSource) Dim() (int, error) {
	if err := s.ensure(); err != nil {
		return 0, err
	}
	return s.dim, nil
}

func (s *PointSource) Point(oid int) ([]float32, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	if oid < 0 || oid >= len(s.vectors) {
		return nil, fmt.Errorf("objectstore: point id %d out of range [0,%d)", oid, len(s.vectors))
	}
	return s.vectors[oid], nil
}

func (s *PointSource) Close() error {
	s.vectors = nil
	return nil
}

// AttributeSource implements model.AttributeSource over an attrs.csv
// blob, read fully into memory on first use.
type AttributeSource struct {
	store BlobStore
	name  string

	attrs  []float64
	loaded bool
}

// NewAttributeSource returns an AttributeSource that lazily loads name
// from store on first Len/Attribute call.
func NewAttributeSource(store BlobStore, name string) *AttributeSource {
	return &AttributeSource{store: store, name: name}
}

func (s *AttributeSource) ensure() error {
	if s.loaded {
		return nil
	}
	attrs, err := ReadAttributes(s.store, s.name)
	if err != nil {
		return err
	}
	s.attrs, s.loaded = attrs, true
	return nil
}

func (s *AttributeSource) Len() (int, error) {
	if err := s.ensure(); err != nil {
		return 0, err
	}
	return len(s.attrs), nil
}

func (s *AttributeSource) Attribute(oid int) (float64, error) {
	if err := s.ensure(); err != nil {
		return 0, err
	}
	if oid < 0 || oid >= len(s.attrs) {
		return 0, fmt.Errorf("objectstore: attribute id %d out of range [0,%d)", oid, len(s.attrs))
	}
	return s.attrs[oid], nil
}

func (s *AttributeSource) Close() error {
	s.attrs = nil
	return nil
}

var (
	_ model.PointSource     = (*PointSource)(nil)
	_ model.AttributeSource = (*AttributeSource)(nil)
)
