// Package bwst answers range-filtered approximate nearest-neighbor (ANN)
// queries over a corpus of high-dimensional vectors, each tagged with a
// scalar attribute.
//
// A query supplies a vector q, an attribute interval [lo, hi], and a
// neighbor count k; Index.Query returns up to k identifiers of corpus
// points whose attribute lies in [lo, hi] and whose distance to q is
// approximately minimal.
//
// The index is a B-Window Search Tree (B-WST): corpus points are sorted
// by attribute and recursively split into nested buckets, each holding
// an independent Vamana-style proximity graph. Queries pick the
// narrowest tree level whose buckets fully cover [lo, hi], beam-search
// each covering bucket, merge, and postfilter by attribute.
//
// # Quick start
//
//	idx, err := bwst.Build(ctx, vectors, attrs, bwst.DefaultOptions()...)
//	if err != nil {
//	    // handle error
//	}
//	defer idx.Close()
//
//	results, err := idx.Query(ctx, query, 10.0, 50.0, 10)
//
// # Scope
//
// The index is built once from an in-memory or pluggable-source corpus
// and is immutable and safe for concurrent queries thereafter. There is
// no on-disk serialization, no mutation (insert/delete/update) of an
// existing index, and no distributed execution.
package bwst
