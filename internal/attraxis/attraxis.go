// Package attraxis holds the sorted attribute column and the id
// permutation it implies (component C): once the corpus is sorted by
// attribute, this is the one place that remembers which original id each
// sorted position came from.
package attraxis

import (
	"fmt"
	"sort"

	"github.com/hupe1980/bwst/model"
)

// Axis holds the attribute column in sorted order, plus decode[], the
// sorted-id -> original-id permutation needed to map results back out.
type Axis struct {
	sorted []float64
	decode []model.OriginalID
}

// Build sorts attrs by value (stable, so equal attributes keep their
// relative original order) and returns the resulting Axis. attrs[i] is
// the attribute of original id i.
func Build(attrs []float64) *Axis {
	n := len(attrs)
	decode := make([]model.OriginalID, n)
	for i := range decode {
		decode[i] = model.OriginalID(i)
	}

	sort.SliceStable(decode, func(i, j int) bool {
		return attrs[decode[i]] < attrs[decode[j]]
	})

	sortedVals := make([]float64, n)
	for i, oid := range decode {
		sortedVals[i] = attrs[oid]
	}

	return &Axis{sorted: sortedVals, decode: decode}
}

// Len returns n, the number of points on the axis.
func (a *Axis) Len() int {
	return len(a.sorted)
}

// At returns the attribute at sorted position i.
func (a *Axis) At(i int) float64 {
	return a.sorted[i]
}

// Min returns the smallest attribute value, or 0 if the axis is empty.
func (a *Axis) Min() float64 {
	if len(a.sorted) == 0 {
		return 0
	}
	return a.sorted[0]
}

// Max returns the largest attribute value, or 0 if the axis is empty.
func (a *Axis) Max() float64 {
	if len(a.sorted) == 0 {
		return 0
	}
	return a.sorted[len(a.sorted)-1]
}

// LowerBound returns the smallest sorted index i with sorted[i] >= v,
// or Len() if no such index exists.
func (a *Axis) LowerBound(v float64) int {
	return sort.SearchFloat64s(a.sorted, v)
}

// MapOut maps a local id within a bucket starting at bucketStart back to
// its original corpus id via decode[].
func (a *Axis) MapOut(localID model.LocalID, bucketStart int) model.OriginalID {
	return a.decode[bucketStart+int(localID)]
}

// Decode returns the original id stored at sorted position i.
func (a *Axis) Decode(i int) model.OriginalID {
	return a.decode[i]
}

// Validate checks the permutation and non-decreasing invariants this
// package's build guarantees: useful for tests and for a paranoid
// construction-time sanity check on external input.
func (a *Axis) Validate() error {
	n := len(a.sorted)
	seen := make([]bool, n)
	for _, oid := range a.decode {
		if int(oid) < 0 || int(oid) >= n {
			return fmt.Errorf("attraxis: decode id %d out of range [0, %d)", oid, n)
		}
		if seen[oid] {
			return fmt.Errorf("attraxis: decode id %d appears more than once", oid)
		}
		seen[oid] = true
	}
	for i := 1; i < n; i++ {
		if a.sorted[i] < a.sorted[i-1] {
			return fmt.Errorf("attraxis: sorted attributes not non-decreasing at index %d", i)
		}
	}
	return nil
}
