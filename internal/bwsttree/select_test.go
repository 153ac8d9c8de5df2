package bwsttree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectBucketsCollapsesToSingleBucket(t *testing.T) {
	levels := computeLevels(1024, 4, 64)
	// [64, 128) lies exactly within one level-2 bucket.
	level, s, e := selectBuckets(levels, 64, 128)
	assert.Equal(t, 2, level)
	assert.Equal(t, 1, e-s)
	offsets := levels[level]
	assert.LessOrEqual(t, offsets[s], 64)
	assert.GreaterOrEqual(t, offsets[e], 128)
}

func TestSelectBucketsSpansSiblingsAtDeepestLevel(t *testing.T) {
	levels := computeLevels(1024, 4, 64)
	// [60, 140) fits inside one bucket on levels 0 and 1, but level 2's
	// buckets are 64 wide so it crosses the boundaries at 64 and 128,
	// and selection ends on the deepest level's multi-bucket cover.
	level, s, e := selectBuckets(levels, 60, 140)
	assert.Equal(t, len(levels)-1, level)
	assert.Greater(t, e-s, 1)
}

func TestSelectBucketsRootOnlyTree(t *testing.T) {
	levels := computeLevels(16, 2, 16)
	level, s, e := selectBuckets(levels, 0, 16)
	assert.Equal(t, 0, level)
	assert.Equal(t, 0, s)
	assert.Equal(t, 1, e)
}

func TestBucketStartEnd(t *testing.T) {
	offsets := []int{0, 10, 20, 30}
	assert.Equal(t, 0, bucketStart(offsets, 0))
	assert.Equal(t, 0, bucketStart(offsets, 9))
	assert.Equal(t, 1, bucketStart(offsets, 10))
	assert.Equal(t, 2, bucketStart(offsets, 29))

	assert.Equal(t, 1, bucketEnd(offsets, 1))
	assert.Equal(t, 1, bucketEnd(offsets, 10))
	assert.Equal(t, 2, bucketEnd(offsets, 11))
	assert.Equal(t, 3, bucketEnd(offsets, 30))
}
