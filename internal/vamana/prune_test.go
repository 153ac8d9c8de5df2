package vamana

import (
	"testing"

	"github.com/hupe1980/bwst/internal/pointstore"
	"github.com/hupe1980/bwst/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobustPruneBoundsDegree(t *testing.T) {
	rows := make([][]float32, 20)
	for i := range rows {
		rows[i] = []float32{float32(i), 0}
	}
	store, err := pointstore.NewFromRows(rows)
	require.NoError(t, err)
	view := store.SubsetView(0, store.Len())

	candidates := make([]model.LocalID, 0, 19)
	for i := model.LocalID(0); i < 20; i++ {
		if i != 5 {
			candidates = append(candidates, i)
		}
	}

	pruned := robustPrune(view, 5, candidates, 1.2, 4)
	assert.LessOrEqual(t, len(pruned), 4)

	for _, id := range pruned {
		assert.NotEqual(t, model.LocalID(5), id)
	}
}

func TestRobustPruneDominanceInvariant(t *testing.T) {
	rows := make([][]float32, 30)
	for i := range rows {
		rows[i] = []float32{float32(i) * float32(i%3+1), float32(i)}
	}
	store, err := pointstore.NewFromRows(rows)
	require.NoError(t, err)
	view := store.SubsetView(0, store.Len())

	var candidates []model.LocalID
	for i := model.LocalID(0); i < 30; i++ {
		if i != 10 {
			candidates = append(candidates, i)
		}
	}

	const alpha = float32(1.2)
	pruned := robustPrune(view, 10, candidates, alpha, 6)

	for i, a := range pruned {
		for j, b := range pruned {
			if i == j {
				continue
			}
			if view.Distance(10, int(a)) <= view.Distance(10, int(b)) {
				assert.Greater(t, alpha*view.Distance(int(a), int(b)), view.Distance(10, int(b)))
			}
		}
	}
}

func TestRobustPruneDeduplicates(t *testing.T) {
	rows := [][]float32{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	store, err := pointstore.NewFromRows(rows)
	require.NoError(t, err)
	view := store.SubsetView(0, store.Len())

	pruned := robustPrune(view, 0, []model.LocalID{1, 1, 2, 3, 2}, 1.2, 4)
	seen := map[model.LocalID]bool{}
	for _, id := range pruned {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}
