// Package bwsttree implements the B-Window Search Tree (component D): a
// multi-level, attribute-range partition of a sorted corpus into buckets,
// each backed by its own proximity graph, plus the bucket-selection
// algorithm that maps a query range onto the narrowest covering level.
package bwsttree

// computeLevels produces the offsets for every tree level, starting from
// the single root bucket [0, n) and splitting every bucket on a level
// into splitFactor children whenever that level's largest bucket still
// exceeds cutoff. Splitting stops as soon as a level's largest bucket is
// <= cutoff — the more efficient of the two stopping-rule readings the
// reference allows, kept unless a test demands over-splitting by one
// extra level.
func computeLevels(n, splitFactor, cutoff int) [][]int {
	if splitFactor < 2 {
		splitFactor = 2
	}
	if cutoff < 1 {
		cutoff = 1
	}

	levels := [][]int{{0, n}}
	for maxBucketSize(levels[len(levels)-1]) > cutoff {
		levels = append(levels, splitLevel(levels[len(levels)-1], splitFactor))
	}
	return levels
}

func maxBucketSize(offsets []int) int {
	max := 0
	for i := 0; i+1 < len(offsets); i++ {
		if size := offsets[i+1] - offsets[i]; size > max {
			max = size
		}
	}
	return max
}

// splitLevel splits every bucket in offsets into splitFactor children
// whose sizes differ by at most one: children of size ceil(m/splitFactor)
// come first, followed by children one smaller, per §4.D.
func splitLevel(offsets []int, splitFactor int) []int {
	next := make([]int, 0, (len(offsets)-1)*splitFactor+1)
	next = append(next, offsets[0])

	for i := 0; i+1 < len(offsets); i++ {
		start, end := offsets[i], offsets[i+1]
		m := end - start

		large := ceilDiv(m, splitFactor)
		small := large - 1
		kLarge := m - small*splitFactor

		cur := start
		for c := 0; c < splitFactor; c++ {
			size := small
			if c < kLarge {
				size = large
			}
			cur += size
			next = append(next, cur)
		}
	}

	return next
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
