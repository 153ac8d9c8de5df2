// Package searcher provides the reusable scratch state beam search needs:
// a bounded-size frontier heap, an unbounded best-results heap, and a
// visited-node tracker. All three are designed to be allocated once per
// worker and reset between queries rather than reallocated per call.
package searcher

import "github.com/hupe1980/bwst/model"

// Item is a (node, distance) pair stored in a PriorityQueue.
type Item struct {
	Node model.LocalID
	Dist float32
}

// PriorityQueue is a binary heap of Items. It does not implement
// container/heap to avoid interface-dispatch overhead in the search hot
// path; Less/Swap are inlined into sift helpers instead.
type PriorityQueue struct {
	isMaxHeap bool
	items     []Item
}

// NewPriorityQueue creates an empty queue. isMaxHeap selects a max-heap
// (largest distance on top, used for the bounded frontier so the worst
// candidate is cheap to evict) or a min-heap (smallest distance on top,
// used for the best-results heap).
func NewPriorityQueue(isMaxHeap bool) *PriorityQueue {
	return &PriorityQueue{isMaxHeap: isMaxHeap, items: make([]Item, 0, 64)}
}

// Reset clears the queue for reuse, preserving the backing array.
func (pq *PriorityQueue) Reset() {
	pq.items = pq.items[:0]
}

// Len returns the number of items in the queue.
func (pq *PriorityQueue) Len() int {
	return len(pq.items)
}

// Top returns the item at the root of the heap (the max for a max-heap,
// the min for a min-heap) without removing it.
func (pq *PriorityQueue) Top() (Item, bool) {
	if len(pq.items) == 0 {
		return Item{}, false
	}
	return pq.items[0], true
}

// MaxDistance returns the largest distance currently in the queue. For a
// bounded max-heap frontier this is exactly frontier.max_distance() from
// the beam-search admission rule in §4.B.
func (pq *PriorityQueue) MaxDistance() float32 {
	if len(pq.items) == 0 {
		return 0
	}
	if pq.isMaxHeap {
		return pq.items[0].Dist
	}
	max := pq.items[0].Dist
	for _, it := range pq.items[1:] {
		if it.Dist > max {
			max = it.Dist
		}
	}
	return max
}

// Push inserts an item, growing the heap.
func (pq *PriorityQueue) Push(it Item) {
	pq.items = append(pq.items, it)
	pq.siftUp(len(pq.items) - 1)
}

// PushBounded inserts an item into a size-capped heap. If the heap is at
// capacity and it is no better than the current worst element, it is
// dropped; otherwise it replaces the worst element. Used for the beam's
// bounded frontier (size L_s).
func (pq *PriorityQueue) PushBounded(it Item, capacity int) {
	if len(pq.items) < capacity {
		pq.Push(it)
		return
	}
	worst := pq.items[0]
	if pq.isMaxHeap {
		if it.Dist >= worst.Dist {
			return
		}
	} else {
		if it.Dist <= worst.Dist {
			return
		}
	}
	pq.items[0] = it
	pq.siftDown(0)
}

// Pop removes and returns the root item.
func (pq *PriorityQueue) Pop() (Item, bool) {
	n := len(pq.items)
	if n == 0 {
		return Item{}, false
	}
	top := pq.items[0]
	pq.items[0] = pq.items[n-1]
	pq.items = pq.items[:n-1]
	if len(pq.items) > 0 {
		pq.siftDown(0)
	}
	return top, true
}

// Items returns the heap's backing slice (unordered except for the heap
// property). Callers that need ascending order must sort it themselves.
func (pq *PriorityQueue) Items() []Item {
	return pq.items
}

// RemoveAt removes and returns the item at heap index i, restoring the
// heap property.
func (pq *PriorityQueue) RemoveAt(i int) (Item, bool) {
	n := len(pq.items)
	if i < 0 || i >= n {
		return Item{}, false
	}
	removed := pq.items[i]
	last := n - 1
	pq.items[i] = pq.items[last]
	pq.items = pq.items[:last]
	if i < len(pq.items) {
		pq.siftDown(i)
		pq.siftUp(i)
	}
	return removed, true
}

// PopMin removes and returns the item with the smallest distance,
// regardless of the queue's heap orientation. For a min-heap this is an
// O(log n) Pop; for a max-heap (where the root is the largest distance)
// it is an O(n) scan followed by an O(log n) removal. Used by the beam
// search's bounded frontier, which is kept as a max-heap so eviction of
// the worst candidate is O(1) but must still yield its best candidate
// for expansion.
func (pq *PriorityQueue) PopMin() (Item, bool) {
	if !pq.isMaxHeap {
		return pq.Pop()
	}
	if len(pq.items) == 0 {
		return Item{}, false
	}
	minIdx := 0
	for i, it := range pq.items {
		if it.Dist < pq.items[minIdx].Dist {
			minIdx = i
		}
	}
	return pq.RemoveAt(minIdx)
}

func (pq *PriorityQueue) less(i, j int) bool {
	if pq.isMaxHeap {
		return pq.items[i].Dist > pq.items[j].Dist
	}
	return pq.items[i].Dist < pq.items[j].Dist
}

func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.less(i, parent) {
			break
		}
		pq.items[i], pq.items[parent] = pq.items[parent], pq.items[i]
		i = parent
	}
}

func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && pq.less(right, left) {
			child = right
		}
		if !pq.less(child, i) {
			break
		}
		pq.items[i], pq.items[child] = pq.items[child], pq.items[i]
		i = child
	}
}
