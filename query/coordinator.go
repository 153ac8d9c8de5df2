// Package query implements the query coordinator (component E): it
// turns a caller's (q, [lo,hi], k) into a covering set of B-WST buckets,
// beam-searches each one, merges and postfilters the results, and maps
// local ids back to the caller's original ids.
package query

import (
	"context"
	"sort"
	"sync/atomic"

	roaring "github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bwst/internal/attraxis"
	"github.com/hupe1980/bwst/internal/bwsttree"
	"github.com/hupe1980/bwst/internal/resource"
	"github.com/hupe1980/bwst/internal/searcher"
	"github.com/hupe1980/bwst/internal/vamana"
	"github.com/hupe1980/bwst/model"
)

// Coordinator answers range-filtered ANN queries against a built B-WST.
type Coordinator struct {
	tree *bwsttree.Tree
	axis *attraxis.Axis
}

// New creates a Coordinator over an already-built tree and attribute
// axis. Both must describe the same corpus (same n, same sorted-id
// space); Build (the root package) guarantees this.
func New(tree *bwsttree.Tree, axis *attraxis.Axis) *Coordinator {
	return &Coordinator{tree: tree, axis: axis}
}

// Stats reports what a single Query call did, for metrics/logging.
type Stats struct {
	Level           int
	BucketsSearched int
	Visited         int
}

// Query answers one range-filtered ANN query per §4.E. It returns up to
// k results ascending by distance; every result's original-id attribute
// lies in [lo, hi]. parallel, when true and the covering range spans more
// than one bucket, dispatches the per-bucket beam searches concurrently
// (bounded by workers); §5 specifies the query path as single-threaded
// per query by default.
func (c *Coordinator) Query(ctx context.Context, q []float32, lo, hi float64, k int, params vamana.SearchParams, parallel bool, workers int) ([]model.Result, Stats, error) {
	n := c.axis.Len()
	if n == 0 || k <= 0 {
		return nil, Stats{}, nil
	}

	// §4.E step 1: early-out if the range is disjoint from the corpus
	// attribute range (EmptyRange, §7 — recoverable, not an error).
	if hi < c.axis.Min() || lo > c.axis.Max() {
		return nil, Stats{}, nil
	}

	// §4.E step 2.
	startIdx := c.axis.LowerBound(lo)
	endIdx := c.axis.LowerBound(hi)
	if endIdx < n && c.axis.At(endIdx) == hi {
		endIdx++
	}
	if startIdx >= endIdx {
		return nil, Stats{}, nil
	}

	// §4.E step 3.
	level, sBucket, eBucket := c.tree.SelectBuckets(startIdx, endIdx)
	offsets := c.tree.Offsets(level)

	type bucketResult struct {
		start int
		end   int
		items []searcher.Item
	}

	numBuckets := eBucket - sBucket
	results := make([]bucketResult, numBuckets)
	var visitedTotal atomic.Int64

	// searchOne writes only to its own slot in results, so the parallel
	// path below never races on that slice; visitedTotal is the one
	// piece of state shared across goroutines, hence the atomic.
	searchOne := func(i int) {
		b := sBucket + i
		start, end := offsets[b], offsets[b+1]
		graph := c.tree.Graph(level, b)
		items, visited := graph.SearchWithStats(q, k, params)
		results[i] = bucketResult{start: start, end: end, items: items}
		visitedTotal.Add(int64(visited))
	}

	if parallel && numBuckets > 1 {
		pool := resource.NewPool(workers)
		tasks := make([]func(ctx context.Context) error, numBuckets)
		for i := 0; i < numBuckets; i++ {
			i := i
			tasks[i] = func(ctx context.Context) error { searchOne(i); return nil }
		}
		if err := pool.Run(ctx, tasks); err != nil {
			return nil, Stats{}, err
		}
	} else {
		for i := 0; i < numBuckets; i++ {
			searchOne(i)
		}
	}

	// §4.E step 4-5: concatenate sorted-id-mapped candidates, merge
	// ascending by (distance, sorted id).
	type candidate struct {
		sortedID int
		dist     float32
	}
	all := make([]candidate, 0, k*numBuckets)
	for _, br := range results {
		for _, it := range br.items {
			all = append(all, candidate{sortedID: br.start + int(it.Node), dist: it.Dist})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].dist != all[j].dist {
			return all[i].dist < all[j].dist
		}
		return all[i].sortedID < all[j].sortedID
	})

	// §4.E step 7: postfilter. Skip it only when the single covering
	// bucket's attribute span lies entirely within [lo, hi] — the common
	// case once §4.D has picked a tightly-covering level. A roaring
	// bitmap over the admissible sorted-id range gives O(1) membership
	// tests for the edge-bucket case (§8 scenario 6). Candidates are not
	// deduplicated; the buckets of one level never overlap.
	needsFilter := true
	if numBuckets == 1 {
		bStart, bEnd := offsets[sBucket], offsets[sBucket+1]
		if bStart >= startIdx && bEnd <= endIdx {
			needsFilter = false
		}
	}

	var admissible *roaring.Bitmap
	if needsFilter {
		admissible = roaring.New()
		admissible.AddRange(uint64(startIdx), uint64(endIdx))
	}

	out := make([]model.Result, 0, k)
	for _, cand := range all {
		if len(out) >= k {
			break
		}
		if needsFilter && !admissible.Contains(uint32(cand.sortedID)) {
			continue
		}
		out = append(out, model.Result{
			OID:      c.axis.Decode(cand.sortedID),
			Distance: cand.dist,
		})
	}

	return out, Stats{Level: level, BucketsSearched: numBuckets, Visited: int(visitedTotal.Load())}, nil
}
