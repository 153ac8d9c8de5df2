package searcher

import "sync"

// Scratch bundles the per-call state a single beam search needs: a
// bounded frontier (max-heap, so the worst candidate is O(1) to find),
// a visited-node tracker, and an unbounded best-results heap (min-heap)
// collecting every node admitted to the frontier, per §4.B.
//
// Scratch is not safe for concurrent use; callers doing parallel beam
// searches (e.g. across sibling buckets) must use one Scratch per
// goroutine, drawn from a Pool.
type Scratch struct {
	Frontier *PriorityQueue
	Best     *PriorityQueue
	Visited  *VisitedSet
}

func newScratch(capacity int) *Scratch {
	return &Scratch{
		Frontier: NewPriorityQueue(true),
		Best:     NewPriorityQueue(false),
		Visited:  NewVisitedSet(capacity),
	}
}

// Reset clears all three pieces of state for reuse against a new query.
func (s *Scratch) Reset() {
	s.Frontier.Reset()
	s.Best.Reset()
	s.Visited.Reset()
}

// Pool recycles Scratch values across beam-search calls so a busy query
// coordinator or graph builder doesn't allocate heaps and bitsets per
// node/query.
type Pool struct {
	capacity int
	pool     sync.Pool
}

// NewPool creates a Pool whose Scratch values are sized for buckets of up
// to capacity nodes (the visited bitset grows on demand regardless).
func NewPool(capacity int) *Pool {
	p := &Pool{capacity: capacity}
	p.pool.New = func() any { return newScratch(p.capacity) }
	return p
}

// Get returns a reset Scratch from the pool.
func (p *Pool) Get() *Scratch {
	s := p.pool.Get().(*Scratch)
	s.Reset()
	return s
}

// Put returns a Scratch to the pool.
func (p *Pool) Put(s *Scratch) {
	p.pool.Put(s)
}
