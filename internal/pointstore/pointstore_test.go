package pointstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreBasic(t *testing.T) {
	rows := [][]float32{
		{0, 0},
		{3, 4},
		{6, 8},
	}
	s, err := NewFromRows(rows)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.Dim())
	assert.Equal(t, []float32{3, 4}, s.Point(1))
	assert.Equal(t, float32(25), s.DistanceTo(0, []float32{3, 4}))
	assert.Equal(t, float32(25), s.Distance(0, 1))
}

func TestStoreDimensionMismatch(t *testing.T) {
	_, err := NewFromRows([][]float32{{1, 2}, {1}})
	assert.Error(t, err)
}

func TestSubsetView(t *testing.T) {
	rows := [][]float32{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	s, err := NewFromRows(rows)
	require.NoError(t, err)

	v := s.SubsetView(2, 5)
	require.Equal(t, 3, v.Len())
	assert.Equal(t, 2, v.Start())
	assert.Equal(t, []float32{2, 0}, v.Point(0))
	assert.Equal(t, []float32{4, 0}, v.Point(2))
	assert.Equal(t, float32(4), v.Distance(0, 2))
	assert.Equal(t, float32(1), v.DistanceTo(0, []float32{3, 0}))
}

func TestStoreSetPoint(t *testing.T) {
	s := New(2, 3)
	s.SetPoint(0, []float32{1, 2, 3})
	s.SetPoint(1, []float32{4, 5, 6})
	assert.Equal(t, []float32{1, 2, 3}, s.Point(0))
	assert.Equal(t, []float32{4, 5, 6}, s.Point(1))
}
