// Package vamana builds and searches a Vamana-style proximity graph over a
// single bucket's points: bounded out-degree, greedy-search-then-prune
// construction, and beam search with a bounded frontier.
package vamana

// Options configures construction of a single bucket's graph.
type Options struct {
	// R is the maximum out-degree of any node.
	R int

	// L is the build-time beam width used while searching for each
	// node's candidate neighbor set.
	L int

	// Alpha is the RobustPrune diversity slack (>= 1.0).
	Alpha float32

	// Passes is the number of times the node loop runs over the bucket.
	// Two is the conventional choice.
	Passes int

	// SampleSize bounds the medoid search: buckets no larger than this
	// get an exhaustive medoid; larger buckets sample both candidates
	// and peers.
	SampleSize int

	// BuildCut is the frontier admission ratio used during construction.
	BuildCut float32

	// BuildLimit caps the number of nodes visited per node-insertion
	// beam search. Zero means unbounded.
	BuildLimit int

	// BuildDegreeLimit caps the number of outgoing edges expanded per
	// popped node during construction. Zero means unbounded (use R).
	BuildDegreeLimit int

	// Seed drives every source of randomness in Build, so two builds
	// with the same seed, options, and point data produce identical
	// graphs.
	Seed int64
}

// DefaultOptions returns conventional Vamana construction parameters.
func DefaultOptions() Options {
	return Options{
		R:                64,
		L:                100,
		Alpha:            1.2,
		Passes:           2,
		SampleSize:       64,
		BuildCut:         1.35,
		BuildLimit:       0,
		BuildDegreeLimit: 0,
		Seed:             42,
	}
}

// SearchParams configures a single beam search.
type SearchParams struct {
	// BeamSize caps the frontier (L_s in the beam-search literature).
	BeamSize int

	// Cut bounds candidate admission: a node beyond Cut times the
	// frontier's current worst distance is rejected once the frontier
	// is full. Conventional default is 1.35.
	Cut float32

	// Limit caps the total number of nodes visited. Zero means
	// unbounded.
	Limit int

	// DegreeLimit caps the number of outgoing edges expanded per popped
	// node. Zero means unbounded.
	DegreeLimit int
}

// DefaultSearchParams returns conventional beam-search parameters for the
// given beam width.
func DefaultSearchParams(beamSize int) SearchParams {
	return SearchParams{
		BeamSize:    beamSize,
		Cut:         1.35,
		Limit:       0,
		DegreeLimit: 0,
	}
}
