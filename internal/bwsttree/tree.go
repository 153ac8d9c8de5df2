package bwsttree

import (
	"context"
	"time"

	"github.com/hupe1980/bwst/internal/pointstore"
	"github.com/hupe1980/bwst/internal/resource"
	"github.com/hupe1980/bwst/internal/vamana"
)

// Options configures tree construction.
type Options struct {
	// SplitFactor is the number of child buckets per parent.
	SplitFactor int

	// Cutoff is the maximum bucket size below which the tree stops
	// subdividing.
	Cutoff int

	// Vamana configures every bucket's proximity graph.
	Vamana vamana.Options

	// Workers bounds how many bucket graphs build concurrently.
	// <= 0 means 1.
	Workers int

	// OnBucketBuilt, if non-nil, is invoked after each bucket's
	// proximity graph finishes building, from whichever worker
	// goroutine built it. Callers use this to feed per-bucket timing
	// into a MetricsCollector/Logger without this package depending on
	// either.
	OnBucketBuilt func(level, bucket, size int, duration time.Duration, err error)
}

// Tree is an immutable B-Window Search Tree: a multi-level bucket
// partition of a sorted corpus, with one proximity graph built per
// bucket.
type Tree struct {
	n      int
	dim    int
	levels [][]int
	graphs [][]*vamana.Graph
}

// Build constructs every level's bucket partition and, for every bucket
// on every level, its proximity graph. Buckets on a level are
// independent and build concurrently (bounded by opts.Workers); levels
// are built one at a time since each level's bucket boundaries derive
// from the previous one, but nothing in the algorithm prevents buckets
// from different levels being ready to build at different times — this
// implementation keeps levels sequential for simplicity, matching the
// conservative reading of §5's "levels may also overlap" as permissive
// rather than required.
func Build(ctx context.Context, store *pointstore.Store, opts Options) (*Tree, error) {
	n := store.Len()
	levels := computeLevels(n, opts.SplitFactor, opts.Cutoff)

	pool := resource.NewPool(opts.Workers)
	graphs := make([][]*vamana.Graph, len(levels))

	for l, offsets := range levels {
		numBuckets := len(offsets) - 1
		bucketGraphs := make([]*vamana.Graph, numBuckets)

		tasks := make([]func(ctx context.Context) error, numBuckets)
		for b := 0; b < numBuckets; b++ {
			b, l := b, l
			start, end := offsets[b], offsets[b+1]
			tasks[b] = func(ctx context.Context) error {
				buildStart := time.Now()
				view := store.SubsetView(start, end)
				g, err := vamana.Build(ctx, view, opts.Vamana)
				if opts.OnBucketBuilt != nil {
					opts.OnBucketBuilt(l, b, end-start, time.Since(buildStart), err)
				}
				if err != nil {
					return err
				}
				bucketGraphs[b] = g
				return nil
			}
		}

		if err := pool.Run(ctx, tasks); err != nil {
			return nil, err
		}
		graphs[l] = bucketGraphs
	}

	return &Tree{n: n, dim: store.Dim(), levels: levels, graphs: graphs}, nil
}

// Len returns n, the number of points the tree was built over.
func (t *Tree) Len() int {
	return t.n
}

// Dim returns the corpus vector dimension.
func (t *Tree) Dim() int {
	return t.dim
}

// NumLevels returns the number of tree levels, including the root level.
func (t *Tree) NumLevels() int {
	return len(t.levels)
}

// Offsets returns the bucket offsets for a level: Offsets(l)[i] is the
// start of bucket i, and Offsets(l)[len-1] == n.
func (t *Tree) Offsets(level int) []int {
	return t.levels[level]
}

// Graph returns the proximity graph for bucket b on level.
func (t *Tree) Graph(level, bucket int) *vamana.Graph {
	return t.graphs[level][bucket]
}

// SelectBuckets returns the level and half-open bucket range covering
// [startIdx, endIdx) on the sorted axis, per §4.D.
func (t *Tree) SelectBuckets(startIdx, endIdx int) (level, sBucket, eBucket int) {
	return selectBuckets(t.levels, startIdx, endIdx)
}
