package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bwst/internal/attraxis"
	"github.com/hupe1980/bwst/internal/bwsttree"
	"github.com/hupe1980/bwst/internal/pointstore"
	"github.com/hupe1980/bwst/internal/vamana"
	"github.com/hupe1980/bwst/testutil"
)

func buildCoordinator(t *testing.T, rows [][]float32, attrs []float64, splitFactor, cutoff int) (*Coordinator, *attraxis.Axis, [][]float32) {
	t.Helper()

	axis := attraxis.Build(attrs)
	require.NoError(t, axis.Validate())

	sortedRows := make([][]float32, len(rows))
	for i := range sortedRows {
		sortedRows[i] = rows[axis.Decode(i)]
	}

	store, err := pointstore.NewFromRows(sortedRows)
	require.NoError(t, err)

	vopts := vamana.DefaultOptions()
	vopts.R = 8
	vopts.L = 16

	tree, err := bwsttree.Build(context.Background(), store, bwsttree.Options{
		SplitFactor: splitFactor,
		Cutoff:      cutoff,
		Vamana:      vopts,
		Workers:     2,
	})
	require.NoError(t, err)

	return New(tree, axis), axis, sortedRows
}

func TestQueryTinyExhaustive(t *testing.T) {
	rng := testutil.NewRNG(1)
	rows := rng.UniformVectors(16, 4)
	attrs := make([]float64, 16)

	coord, _, sortedRows := buildCoordinator(t, rows, attrs, 2, 16)

	q := []float32{0.5, 0.5, 0.5, 0.5}
	params := vamana.DefaultSearchParams(16)
	results, stats, err := coord.Query(context.Background(), q, -1e18, 1e18, 16, params, false, 1)
	require.NoError(t, err)
	require.Len(t, results, 16)
	assert.Equal(t, 1, stats.BucketsSearched)

	brute := testutil.BruteForce(sortedRows, q, 16, nil)
	for i := range brute {
		assert.Equal(t, int(brute[i].OID), int(results[i].OID), "mismatch at rank %d", i)
	}
}

func TestQuerySingleBucketRange(t *testing.T) {
	attrs := testutil.SequentialAttributes(1024)
	rng := testutil.NewRNG(2)
	rows := rng.UniformVectors(1024, 8)

	coord, _, _ := buildCoordinator(t, rows, attrs, 4, 64)

	q := []float32{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
	params := vamana.DefaultSearchParams(32)
	results, _, err := coord.Query(context.Background(), q, 64, 127, 10, params, false, 1)
	require.NoError(t, err)
	for _, r := range results {
		assert.GreaterOrEqual(t, float64(r.OID), 64.0)
		assert.LessOrEqual(t, float64(r.OID), 127.0)
	}
}

func TestQueryEmptyRange(t *testing.T) {
	attrs := testutil.SequentialAttributes(1000)
	rng := testutil.NewRNG(3)
	rows := rng.UniformVectors(1000, 4)

	coord, _, _ := buildCoordinator(t, rows, attrs, 4, 64)

	q := []float32{0, 0, 0, 0}
	params := vamana.DefaultSearchParams(16)
	results, _, err := coord.Query(context.Background(), q, -5, -1, 10, params, false, 1)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestQuerySpanningSiblings(t *testing.T) {
	attrs := testutil.SequentialAttributes(1024)
	rng := testutil.NewRNG(4)
	rows := rng.UniformVectors(1024, 4)

	coord, _, _ := buildCoordinator(t, rows, attrs, 4, 64)

	q := []float32{0.1, 0.1, 0.1, 0.1}
	params := vamana.DefaultSearchParams(32)
	results, stats, err := coord.Query(context.Background(), q, 60, 140, 10, params, false, 1)
	require.NoError(t, err)
	for _, r := range results {
		assert.GreaterOrEqual(t, float64(r.OID), 60.0)
		assert.LessOrEqual(t, float64(r.OID), 140.0)
	}
	assert.GreaterOrEqual(t, stats.BucketsSearched, 1)
}

func TestQueryResultsSortedAscending(t *testing.T) {
	attrs := testutil.SequentialAttributes(500)
	rng := testutil.NewRNG(5)
	rows := rng.UniformVectors(500, 6)

	coord, _, _ := buildCoordinator(t, rows, attrs, 4, 32)

	q := []float32{0.3, 0.3, 0.3, 0.3, 0.3, 0.3}
	params := vamana.DefaultSearchParams(32)
	results, _, err := coord.Query(context.Background(), q, 0, 499, 10, params, false, 1)
	require.NoError(t, err)
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].Distance, results[i].Distance)
	}
}
