package vamana

import (
	"sort"

	"github.com/hupe1980/bwst/internal/pointstore"
	"github.com/hupe1980/bwst/model"
)

// robustPrune implements the Vamana neighbor-selection rule: greedily pick
// the closest remaining candidate, keep it, then discard every candidate
// that the kept node already dominates by a factor of alpha. Ties among
// equally-close candidates are broken by ascending local id so pruning is
// deterministic under a fixed seed.
func robustPrune(view *pointstore.View, p model.LocalID, candidates []model.LocalID, alpha float32, r int) []model.LocalID {
	type scored struct {
		id   model.LocalID
		dist float32
	}

	seen := make(map[model.LocalID]struct{}, len(candidates))
	remaining := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if c == p {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		remaining = append(remaining, scored{id: c, dist: view.Distance(int(p), int(c))})
	}

	sort.Slice(remaining, func(i, j int) bool {
		if remaining[i].dist != remaining[j].dist {
			return remaining[i].dist < remaining[j].dist
		}
		return remaining[i].id < remaining[j].id
	})

	selected := make([]model.LocalID, 0, r)
	for len(remaining) > 0 && len(selected) < r {
		best := remaining[0]
		selected = append(selected, best.id)

		kept := remaining[:0]
		for _, c := range remaining[1:] {
			if alpha*view.Distance(int(best.id), int(c.id)) > c.dist {
				kept = append(kept, c)
			}
		}
		remaining = kept
	}

	return selected
}
