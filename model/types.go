// Package model holds the types shared across bwst's internal packages:
// the sorted-id space used by the point store, attribute axis, and
// per-bucket proximity graphs, plus the result type the query coordinator
// hands back to callers.
package model

import "fmt"

// LocalID is a node index local to a single proximity graph (bucket).
// Local ids are dense, starting at 0, and only meaningful within the
// bucket that produced them.
type LocalID uint32

// SortedID is an index into the attribute-sorted corpus, i.e. a position
// on the attribute axis. Bucket offsets are expressed in SortedID space.
type SortedID uint32

// OriginalID is the externally visible, stable identifier a caller
// supplied a point under. decode[] maps SortedID -> OriginalID.
type OriginalID uint32

// Candidate is an internal (distance, id) pair produced while a proximity
// graph is searched. IDs are LocalID, scoped to one bucket.
type Candidate struct {
	ID   LocalID
	Dist float32
}

func (c Candidate) String() string {
	return fmt.Sprintf("Candidate(id=%d, dist=%g)", c.ID, c.Dist)
}

// Result is a single ranked neighbor returned to a caller of Index.Query.
// OID is the original, caller-visible identifier; Distance is squared
// Euclidean distance (monotone with true Euclidean, cheaper to compute).
type Result struct {
	OID      OriginalID
	Distance float32
}
