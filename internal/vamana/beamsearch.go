package vamana

import (
	"sort"

	"github.com/hupe1980/bwst/internal/pointstore"
	"github.com/hupe1980/bwst/internal/searcher"
	"github.com/hupe1980/bwst/model"
)

// runBeamSearch performs a single beam search toward q over the given
// adjacency lists, starting from entry. scratch is reset on entry and left
// holding the final frontier/visited/best state; callers read results out
// of scratch.Best.
//
// The frontier is kept as a bounded max-heap so the current worst
// candidate is an O(1) lookup for both the admission-cut test and
// capacity eviction; popping the best unvisited candidate is an O(beam)
// scan via PriorityQueue.PopMin, which is cheap because the frontier never
// grows past params.BeamSize.
func runBeamSearch(view *pointstore.View, neighbors [][]model.LocalID, entry model.LocalID, scratch *searcher.Scratch, q []float32, params SearchParams) int {
	scratch.Reset()

	if view.Len() == 0 {
		return 0
	}

	entryDist := view.DistanceTo(int(entry), q)
	scratch.Visited.Visit(entry)
	scratch.Frontier.Push(searcher.Item{Node: entry, Dist: entryDist})
	scratch.Best.Push(searcher.Item{Node: entry, Dist: entryDist})

	visited := 1

	for scratch.Frontier.Len() > 0 {
		if params.Limit > 0 && visited >= params.Limit {
			break
		}

		u, ok := scratch.Frontier.PopMin()
		if !ok {
			break
		}
		if scratch.Frontier.Len() > 0 && u.Dist > scratch.Frontier.MaxDistance() {
			break
		}

		candidates := neighbors[u.Node]
		degreeLimit := params.DegreeLimit
		if degreeLimit <= 0 || degreeLimit > len(candidates) {
			degreeLimit = len(candidates)
		}

		for i := 0; i < degreeLimit; i++ {
			v := candidates[i]
			if !scratch.Visited.Visit(v) {
				continue
			}
			visited++

			d := view.DistanceTo(int(v), q)
			full := scratch.Frontier.Len() >= params.BeamSize
			admit := !full
			if full && d <= params.Cut*scratch.Frontier.MaxDistance() {
				admit = true
			}
			if admit {
				scratch.Frontier.PushBounded(searcher.Item{Node: v, Dist: d}, params.BeamSize)
				scratch.Best.Push(searcher.Item{Node: v, Dist: d})
			}

			if params.Limit > 0 && visited >= params.Limit {
				break
			}
		}
	}

	return visited
}

// topK drains best into the k smallest results, ascending by distance
// with ties broken by ascending local id.
func topK(best *searcher.PriorityQueue, k int) []searcher.Item {
	items := append([]searcher.Item(nil), best.Items()...)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Dist != items[j].Dist {
			return items[i].Dist < items[j].Dist
		}
		return items[i].Node < items[j].Node
	})
	if k >= 0 && len(items) > k {
		items = items[:k]
	}
	return items
}
