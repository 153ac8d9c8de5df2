package vamana

import (
	"github.com/hupe1980/bwst/internal/pointstore"
	"github.com/hupe1980/bwst/internal/searcher"
	"github.com/hupe1980/bwst/model"
)

// Graph is an immutable Vamana-style proximity graph over one bucket's
// points, addressed by local ids 0..Len()-1.
type Graph struct {
	view       *pointstore.View
	neighbors  [][]model.LocalID
	entryPoint model.LocalID
	pool       *searcher.Pool
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.neighbors)
}

// EntryPoint returns the node search begins from.
func (g *Graph) EntryPoint() model.LocalID {
	return g.entryPoint
}

// Neighbors returns the outgoing edges of node id. The slice is owned by
// the graph and must not be mutated.
func (g *Graph) Neighbors(id model.LocalID) []model.LocalID {
	return g.neighbors[id]
}

// Search runs a beam search toward q and returns the k closest nodes
// found, ascending by distance with ties broken by ascending local id.
// It acquires a Scratch from the graph's pool and returns it afterward,
// so it is safe to call concurrently from multiple goroutines.
func (g *Graph) Search(q []float32, k int, params SearchParams) []searcher.Item {
	items, _ := g.SearchWithStats(q, k, params)
	return items
}

// SearchWithStats is Search plus the number of nodes visited during the
// search, for callers (the query coordinator's metrics) that report
// visited-node counts alongside results.
func (g *Graph) SearchWithStats(q []float32, k int, params SearchParams) ([]searcher.Item, int) {
	scratch := g.pool.Get()
	defer g.pool.Put(scratch)

	if g.Len() == 0 {
		return nil, 0
	}

	visited := runBeamSearch(g.view, g.neighbors, g.entryPoint, scratch, q, params)
	return topK(scratch.Best, k), visited
}
