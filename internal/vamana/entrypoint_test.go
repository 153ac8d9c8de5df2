package vamana

import (
	"math/rand"
	"testing"

	"github.com/hupe1980/bwst/internal/pointstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectEntryPointExhaustiveIsCentral(t *testing.T) {
	rows := [][]float32{
		{-100, 0},
		{0, 0},
		{1, 0},
		{-1, 0},
		{100, 0},
	}
	store, err := pointstore.NewFromRows(rows)
	require.NoError(t, err)
	view := store.SubsetView(0, store.Len())

	entry := selectEntryPoint(view, rand.New(rand.NewSource(1)), 64)
	assert.Contains(t, []int{1, 2, 3}, int(entry))
}

func TestSelectEntryPointSingleNode(t *testing.T) {
	store, err := pointstore.NewFromRows([][]float32{{1, 2}})
	require.NoError(t, err)
	view := store.SubsetView(0, store.Len())

	entry := selectEntryPoint(view, rand.New(rand.NewSource(1)), 64)
	assert.Equal(t, 0, int(entry))
}

func TestSelectEntryPointSampledLargeBucket(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	rows := make([][]float32, 500)
	for i := range rows {
		rows[i] = []float32{rng.Float32() * 10, rng.Float32() * 10}
	}
	store, err := pointstore.NewFromRows(rows)
	require.NoError(t, err)
	view := store.SubsetView(0, store.Len())

	entry := selectEntryPoint(view, rng, 32)
	assert.GreaterOrEqual(t, int(entry), 0)
	assert.Less(t, int(entry), 500)
}
