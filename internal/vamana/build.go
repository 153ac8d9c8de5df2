package vamana

import (
	"context"
	"math/rand"
	"sort"

	"github.com/hupe1980/bwst/internal/pointstore"
	"github.com/hupe1980/bwst/internal/searcher"
	"github.com/hupe1980/bwst/model"
)

// Build constructs a proximity graph over every point in view. It runs
// entirely in the calling goroutine; callers building many bucket graphs
// concurrently should call Build from their own worker pool (see
// internal/bwsttree), not expect it to parallelize internally — within a
// single graph, node processing is inherently sequential because each
// node's edges depend on edges already committed by prior nodes.
func Build(ctx context.Context, view *pointstore.View, opts Options) (*Graph, error) {
	m := view.Len()
	neighbors := make([][]model.LocalID, m)
	if m == 0 {
		return &Graph{view: view, neighbors: neighbors, pool: searcher.NewPool(0)}, nil
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	initRandomGraph(neighbors, rng, opts.R)
	entry := selectEntryPoint(view, rng, opts.SampleSize)

	pool := searcher.NewPool(m)
	params := SearchParams{
		BeamSize:    opts.L,
		Cut:         opts.BuildCut,
		Limit:       opts.BuildLimit,
		DegreeLimit: opts.BuildDegreeLimit,
	}

	passes := opts.Passes
	if passes <= 0 {
		passes = 1
	}

	for pass := 0; pass < passes; pass++ {
		order := rng.Perm(m)
		for _, idx := range order {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			p := model.LocalID(idx)
			scratch := pool.Get()
			runBeamSearch(view, neighbors, entry, scratch, view.Point(idx), params)

			visited := scratch.Best.Items()
			candidateSet := make([]model.LocalID, 0, len(visited)+len(neighbors[p]))
			for _, it := range visited {
				candidateSet = append(candidateSet, it.Node)
			}
			candidateSet = append(candidateSet, neighbors[p]...)
			pool.Put(scratch)

			pruned := robustPrune(view, p, candidateSet, opts.Alpha, opts.R)
			neighbors[p] = pruned

			for _, n := range pruned {
				addEdge(view, neighbors, n, p, opts.Alpha, opts.R)
			}
		}
	}

	return &Graph{view: view, neighbors: neighbors, entryPoint: entry, pool: pool}, nil
}

// initRandomGraph seeds every node with up to R/2 random, distinct
// out-edges, the standard Vamana starting point before the first greedy
// pass.
func initRandomGraph(neighbors [][]model.LocalID, rng *rand.Rand, r int) {
	m := len(neighbors)
	degree := r / 2
	if degree > m-1 {
		degree = m - 1
	}
	if degree < 0 {
		degree = 0
	}

	for i := 0; i < m; i++ {
		if degree == 0 {
			neighbors[i] = []model.LocalID{}
			continue
		}
		picks := make(map[model.LocalID]struct{}, degree)
		for len(picks) < degree {
			j := model.LocalID(rng.Intn(m))
			if int(j) != i {
				picks[j] = struct{}{}
			}
		}
		edges := make([]model.LocalID, 0, degree)
		for j := range picks {
			edges = append(edges, j)
		}
		sort.Slice(edges, func(a, b int) bool { return edges[a] < edges[b] })
		neighbors[i] = edges
	}
}

// addEdge adds a reciprocal edge src -> dst, re-pruning src's neighbor
// list if it now exceeds the out-degree budget.
func addEdge(view *pointstore.View, neighbors [][]model.LocalID, src, dst model.LocalID, alpha float32, r int) {
	for _, n := range neighbors[src] {
		if n == dst {
			return
		}
	}

	neighbors[src] = append(neighbors[src], dst)
	if len(neighbors[src]) > r {
		neighbors[src] = robustPrune(view, src, neighbors[src], alpha, r)
	}
}
