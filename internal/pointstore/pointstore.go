// Package pointstore owns the n x d vector buffer in attribute-sorted
// order (component A of the design). It is the one piece of state every
// bucket's proximity graph reads from but never copies.
package pointstore

import "fmt"

// Store is a densely packed, row-major n x d float32 buffer. Rows are in
// attribute-sorted order; row i corresponds to model.SortedID(i).
type Store struct {
	data []float32
	n    int
	dim  int
}

// New allocates a Store for n points of dimension dim.
func New(n, dim int) *Store {
	return &Store{data: make([]float32, n*dim), n: n, dim: dim}
}

// NewFromRows builds a Store from n already-dim-sized rows, copying each
// row into the packed buffer. rows must have length n and each entry
// length dim.
func NewFromRows(rows [][]float32) (*Store, error) {
	n := len(rows)
	if n == 0 {
		return &Store{}, nil
	}
	dim := len(rows[0])
	s := New(n, dim)
	for i, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("pointstore: row %d has dimension %d, want %d", i, len(row), dim)
		}
		s.SetPoint(i, row)
	}
	return s, nil
}

// Len returns the number of points.
func (s *Store) Len() int { return s.n }

// Dim returns the vector dimension.
func (s *Store) Dim() int { return s.dim }

// Point returns the row at sorted index i as a zero-copy slice into the
// backing buffer. Callers must not retain it past the Store's lifetime
// and must not mutate it.
func (s *Store) Point(i int) []float32 {
	return s.data[i*s.dim : (i+1)*s.dim]
}

// SetPoint copies vec into row i. Used only during construction.
func (s *Store) SetPoint(i int, vec []float32) {
	copy(s.data[i*s.dim:(i+1)*s.dim], vec)
}

// DistanceTo returns the squared Euclidean distance between stored row i
// and an external query vector q. Squared distance is monotone with true
// Euclidean distance and cheaper to compute (§9); rankings are
// unaffected. The summation order matches across all call sites so
// rankings are stable and reproducible.
func (s *Store) DistanceTo(i int, q []float32) float32 {
	row := s.Point(i)
	var sum float32
	for j := range row {
		d := row[j] - q[j]
		sum += d * d
	}
	return sum
}

// Distance returns the squared Euclidean distance between two stored rows.
func (s *Store) Distance(i, j int) float32 {
	return s.DistanceTo(i, s.Point(j))
}

// SubsetView returns a zero-copy logical view over the half-open sorted-id
// range [start, end). It does not reallocate or copy vectors; every bucket
// graph is built against a View rather than a private copy of its slice of
// the corpus.
func (s *Store) SubsetView(start, end int) *View {
	return &View{store: s, start: start, end: end}
}

// View is a zero-copy, read-only window over a contiguous range of a
// Store's rows, addressed by local indices 0..(end-start-1).
type View struct {
	store      *Store
	start, end int
}

// Len returns the number of points in the view.
func (v *View) Len() int { return v.end - v.start }

// Dim returns the vector dimension.
func (v *View) Dim() int { return v.store.dim }

// Start returns the view's offset into the underlying Store's sorted-id
// space; local id 0 is global sorted id Start().
func (v *View) Start() int { return v.start }

// Point returns the row at local index i.
func (v *View) Point(i int) []float32 {
	return v.store.Point(v.start + i)
}

// DistanceTo returns the squared Euclidean distance from local row i to
// an external query vector.
func (v *View) DistanceTo(i int, q []float32) float32 {
	return v.store.DistanceTo(v.start+i, q)
}

// Distance returns the squared Euclidean distance between two local rows.
func (v *View) Distance(i, j int) float32 {
	return v.store.Distance(v.start+i, v.start+j)
}
