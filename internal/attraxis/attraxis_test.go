package attraxis

import (
	"testing"

	"github.com/hupe1980/bwst/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSortsAndPermutes(t *testing.T) {
	attrs := []float64{5, 1, 3, 1, 4}
	axis := Build(attrs)

	require.Equal(t, 5, axis.Len())
	require.NoError(t, axis.Validate())

	for i := 0; i < axis.Len(); i++ {
		assert.Equal(t, attrs[axis.Decode(i)], axis.At(i))
	}
	for i := 1; i < axis.Len(); i++ {
		assert.LessOrEqual(t, axis.At(i-1), axis.At(i))
	}
}

func TestLowerBound(t *testing.T) {
	axis := Build([]float64{10, 20, 20, 30, 40})

	assert.Equal(t, 0, axis.LowerBound(5))
	assert.Equal(t, 0, axis.LowerBound(10))
	assert.Equal(t, 1, axis.LowerBound(15))
	assert.Equal(t, 1, axis.LowerBound(20))
	assert.Equal(t, 3, axis.LowerBound(25))
	assert.Equal(t, 5, axis.LowerBound(100))
}

func TestMapOut(t *testing.T) {
	axis := Build([]float64{30, 10, 20})
	// sorted order: oid1(10), oid2(20), oid0(30)
	assert.Equal(t, model.OriginalID(1), axis.MapOut(0, 0))
	assert.Equal(t, model.OriginalID(2), axis.MapOut(1, 0))
	assert.Equal(t, model.OriginalID(0), axis.MapOut(2, 0))
	assert.Equal(t, model.OriginalID(0), axis.MapOut(0, 2))
}

func TestMinMaxEmpty(t *testing.T) {
	axis := Build(nil)
	assert.Equal(t, 0.0, axis.Min())
	assert.Equal(t, 0.0, axis.Max())
	assert.Equal(t, 0, axis.Len())
}

func TestValidateDetectsNonPermutation(t *testing.T) {
	axis := Build([]float64{1, 2, 3})
	axis.decode[0] = 99
	assert.Error(t, axis.Validate())
}
