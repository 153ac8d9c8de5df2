package bwsttree

import "sort"

// selectBuckets scans levels shallowest to deepest and returns the level
// index and half-open bucket range [sBucket, eBucket) covering
// [startIdx, endIdx) on the sorted axis, per §4.D: it descends while the
// range still fits inside a single bucket, stops at the first level where
// the range spans more than one bucket and returns that level's
// multi-bucket cover, and returns the deepest level's single bucket if
// the range fits one bucket on every level.
func selectBuckets(levels [][]int, startIdx, endIdx int) (level, sBucket, eBucket int) {
	for l, offsets := range levels {
		s := bucketStart(offsets, startIdx)
		e := bucketEnd(offsets, endIdx)
		level, sBucket, eBucket = l, s, e
		if e-s > 1 {
			return
		}
	}
	return
}

// bucketStart returns the largest index i such that offsets[i] <= idx.
func bucketStart(offsets []int, idx int) int {
	i := sort.Search(len(offsets), func(i int) bool { return offsets[i] > idx })
	return i - 1
}

// bucketEnd returns the smallest index i such that offsets[i] >= idx.
func bucketEnd(offsets []int, idx int) int {
	return sort.Search(len(offsets), func(i int) bool { return offsets[i] >= idx })
}
