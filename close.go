package bwst

// Close releases the Index's in-memory structures. There is no managed
// I/O to flush — the index holds no file handles, no WAL, no on-disk
// state (Non-goal: serialization) — so Close exists for lifecycle
// symmetry (§3: "dropped atomically when the index is discarded") and to
// let the tree, axis, and graphs become eligible for GC immediately
// rather than waiting for idx itself to go out of scope.
func (idx *Index) Close() error {
	if idx == nil {
		return nil
	}
	idx.tree = nil
	idx.axis = nil
	idx.coord = nil
	return nil
}
