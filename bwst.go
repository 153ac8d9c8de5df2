package bwst

import (
	"github.com/hupe1980/bwst/internal/attraxis"
	"github.com/hupe1980/bwst/internal/bwsttree"
	"github.com/hupe1980/bwst/internal/resource"
	"github.com/hupe1980/bwst/query"
)

// Index is an immutable B-Window Search Tree over a fixed corpus (§3
// Lifecycle: built once, then read-only). It is safe for concurrent
// Query calls from multiple goroutines.
type Index struct {
	tree  *bwsttree.Tree
	axis  *attraxis.Axis
	coord *query.Coordinator

	dim     int
	workers int
	pacer   *resource.Pacer

	logger  *Logger
	metrics MetricsCollector
}

// Len returns n, the number of points in the corpus.
func (idx *Index) Len() int {
	if idx.tree == nil {
		return 0
	}
	return idx.tree.Len()
}

// Dim returns the corpus vector dimension.
func (idx *Index) Dim() int {
	return idx.dim
}

// NumLevels returns the number of B-WST tree levels, including the root.
func (idx *Index) NumLevels() int {
	if idx.tree == nil {
		return 0
	}
	return idx.tree.NumLevels()
}
