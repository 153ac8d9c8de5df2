package vamana

import (
	"math"
	"math/rand"

	"github.com/hupe1980/bwst/internal/pointstore"
	"github.com/hupe1980/bwst/model"
)

// selectEntryPoint picks the node minimizing the sum of distances to a
// small random sample of peers (the medoid). Buckets no larger than
// sampleSize get an exhaustive medoid over all nodes; larger buckets draw
// independent candidate and peer samples.
func selectEntryPoint(view *pointstore.View, rng *rand.Rand, sampleSize int) model.LocalID {
	m := view.Len()
	if m <= 1 {
		return 0
	}
	if m <= sampleSize {
		return medoidOf(view, allIndices(m), allIndices(m))
	}
	return medoidOf(view, rng.Perm(m)[:sampleSize], rng.Perm(m)[:sampleSize])
}

func allIndices(m int) []int {
	idx := make([]int, m)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func medoidOf(view *pointstore.View, candidates, peers []int) model.LocalID {
	best := model.LocalID(candidates[0])
	bestSum := float32(math.MaxFloat32)
	for _, c := range candidates {
		var sum float32
		for _, p := range peers {
			if p != c {
				sum += view.Distance(c, p)
			}
		}
		if sum < bestSum {
			bestSum = sum
			best = model.LocalID(c)
		}
	}
	return best
}
