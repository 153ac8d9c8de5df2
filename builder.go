package bwst

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/bwst/internal/attraxis"
	"github.com/hupe1980/bwst/internal/bwsttree"
	"github.com/hupe1980/bwst/internal/pointstore"
	"github.com/hupe1980/bwst/internal/resource"
	"github.com/hupe1980/bwst/model"
	"github.com/hupe1980/bwst/query"
)

// Build constructs a B-WST index over vectors, each tagged with the
// attribute at the same position in attrs (§3 DATA MODEL). vectors must
// be non-empty and every vector must share one dimension; attrs must
// have the same length as vectors.
//
// Build performs, in order: a stable sort by attribute (§3, §4.C), the
// recursive bucket partition (§4.D), and one proximity graph build per
// bucket (§4.B), concurrent across the buckets of a level (bounded by
// WithWorkers), one level after another.
// The returned Index is immutable and safe for concurrent Query calls.
func Build(ctx context.Context, vectors [][]float32, attrs []float64, optFns ...Option) (*Index, error) {
	o := applyOptions(optFns)
	start := time.Now()

	n := len(vectors)
	if n == 0 {
		return nil, ErrEmptyCorpus
	}
	if len(attrs) != n {
		return nil, &InputShapeError{What: "attribute count", Expected: n, Got: len(attrs)}
	}

	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return nil, &model.DimensionMismatchError{Want: dim, Got: len(v), What: fmt.Sprintf("corpus point %d", i)}
		}
	}

	axis := attraxis.Build(attrs)

	sorted := make([][]float32, n)
	for i := range sorted {
		sorted[i] = vectors[axis.Decode(i)]
	}
	store, err := pointstore.NewFromRows(sorted)
	if err != nil {
		return nil, err
	}

	tree, err := bwsttree.Build(ctx, store, bwsttree.Options{
		SplitFactor: o.splitFactor,
		Cutoff:      o.cutoff,
		Vamana:      o.vamana,
		Workers:     o.workers,
		OnBucketBuilt: func(level, bucket, size int, duration time.Duration, buildErr error) {
			o.metricsCollector.RecordBucketBuild(level, size, duration)
			o.logger.LogBucketBuild(ctx, level, bucket, size, buildErr)
		},
	})

	o.metricsCollector.RecordBuild(n, numLevels(tree), time.Since(start), err)
	o.logger.LogBuild(ctx, n, dim, numLevels(tree), err)

	if err != nil {
		return nil, err
	}

	idx := &Index{
		tree:    tree,
		axis:    axis,
		coord:   query.New(tree, axis),
		dim:     dim,
		workers: o.workers,
		pacer:   resource.NewPacer(o.queryRateLimit),
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
	return idx, nil
}

// BuildFromSources is Build for a corpus that does not already fit in
// memory as [][]float32/[]float64: points and attrs are read fully
// once, in original-id order, from the pluggable PointSource/
// AttributeSource collaborators spec.md §1 names (local file, S3,
// MinIO — see internal/objectstore).
func BuildFromSources(ctx context.Context, points model.PointSource, attrs model.AttributeSource, optFns ...Option) (*Index, error) {
	n, err := points.Len()
	if err != nil {
		return nil, err
	}
	attrN, err := attrs.Len()
	if err != nil {
		return nil, err
	}
	if attrN != n {
		return nil, &InputShapeError{What: "attribute count", Expected: n, Got: attrN}
	}

	vectors := make([][]float32, n)
	for i := 0; i < n; i++ {
		v, err := points.Point(i)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}

	attrVals := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := attrs.Attribute(i)
		if err != nil {
			return nil, err
		}
		attrVals[i] = v
	}

	return Build(ctx, vectors, attrVals, optFns...)
}

func numLevels(tree *bwsttree.Tree) int {
	if tree == nil {
		return 0
	}
	return tree.NumLevels()
}
