package bwst

import (
	"context"
	"runtime"
	"time"

	"github.com/hupe1980/bwst/model"
)

// Query answers a range-filtered ANN query (§4.E): up to k identifiers
// of corpus points whose attribute lies in [lo, hi], ordered ascending
// by approximate distance to q. lo must be <= hi. Each covering bucket
// contributes at most k candidates before the attribute filter, so if
// fewer than k of those satisfy the predicate, Query returns only those
// (§7 InsufficientResults — not an error); if [lo, hi] is disjoint from
// the corpus attribute range, Query returns an empty, nil-error result
// (§7 EmptyRange).
func (idx *Index) Query(ctx context.Context, q []float32, lo, hi float64, k int, optFns ...QueryOption) ([]model.Result, error) {
	start := time.Now()

	if len(q) != idx.dim {
		err := &model.DimensionMismatchError{Want: idx.dim, Got: len(q), What: "query vector"}
		idx.metrics.RecordQuery(k, 0, 0, time.Since(start), err)
		idx.logger.LogQuery(ctx, k, 0, 0, 0, err)
		return nil, err
	}
	if k <= 0 {
		idx.metrics.RecordQuery(k, 0, 0, time.Since(start), ErrInvalidK)
		return nil, ErrInvalidK
	}
	if lo > hi {
		idx.metrics.RecordQuery(k, 0, 0, time.Since(start), ErrInvalidRange)
		return nil, ErrInvalidRange
	}
	if err := idx.pacer.Wait(ctx); err != nil {
		idx.metrics.RecordQuery(k, 0, 0, time.Since(start), err)
		return nil, err
	}

	o := applyQueryOptions(optFns)
	workers := idx.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results, stats, err := idx.coord.Query(ctx, q, lo, hi, k, o.params, o.parallel, workers)

	idx.metrics.RecordQuery(k, len(results), stats.Visited, time.Since(start), err)
	idx.logger.LogQuery(ctx, k, stats.Level, stats.BucketsSearched, len(results), err)

	return results, err
}
