// Package pqueue provides a generic min-heap priority queue shared by
// Dijkstra, A*, Johnson, closeness/harmonic centrality, Prim, and the
// densest-subgraph peeling algorithm.
// Grounded on dijkstra/dijkstra.go's nodeItem/nodePQ pair: a lazy-decrease
// -key heap of (item, priority) pairs implementing container/heap.Interface,
// with stale entries simply ignored by the caller on Pop instead of being
// removed from the heap (cheaper than a decrease-key-capable heap for the
// access pattern shortest-path algorithms actually have).
package pqueue

import "container/heap"

// Item is one (value, priority) pair held in the heap, ordered by Priority
// ascending (a min-heap).
type Item[T any] struct {
	Value    T
	Priority float64
}

// innerHeap implements container/heap.Interface over a slice of *Item[T].
type innerHeap[T any] []*Item[T]

func (h innerHeap[T]) Len() int            { return len(h) }
func (h innerHeap[T]) Less(i, j int) bool  { return h[i].Priority < h[j].Priority }
func (h innerHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap[T]) Push(x interface{}) { *h = append(*h, x.(*Item[T])) }
func (h *innerHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// Queue is a min-priority-queue of values of type T.
type Queue[T any] struct {
	h innerHeap[T]
}

// New constructs an empty queue, optionally reserving capacity.
func New[T any](capacityHint int) *Queue[T] {
	return &Queue[T]{h: make(innerHeap[T], 0, capacityHint)}
}

// Push inserts value with the given priority. O(log n).
func (q *Queue[T]) Push(value T, priority float64) {
	heap.Push(&q.h, &Item[T]{Value: value, Priority: priority})
}

// Pop removes and returns the lowest-priority item. O(log n).
func (q *Queue[T]) Pop() (T, float64, bool) {
	if q.h.Len() == 0 {
		var zero T
		return zero, 0, false
	}
	it := heap.Pop(&q.h).(*Item[T])
	return it.Value, it.Priority, true
}

// Len reports the number of items currently queued.
func (q *Queue[T]) Len() int { return q.h.Len() }
