package graph

import "sort"

// OrderedNodeMap is a deterministic variant of NodeMap: iteration always
// visits keys in a fixed order (by NodeId slot, then generation), unlike the
// unspecified order of a plain Go map. Backed by a sorted slice rather than
// an actual balanced tree, since Go's stdlib has none built in and a sorted
// slice gives the same deterministic-iteration guarantee for the access
// patterns these algorithms use (build once, iterate many times).
type OrderedNodeMap[T any] struct {
	keys   []NodeId
	values []T
}

// NewOrderedNodeMap constructs an empty OrderedNodeMap.
func NewOrderedNodeMap[T any]() *OrderedNodeMap[T] {
	return &OrderedNodeMap[T]{}
}

func (m *OrderedNodeMap[T]) search(id NodeId) int {
	return sort.Search(len(m.keys), func(i int) bool {
		a, b := m.keys[i], id
		if a.slot != b.slot {
			return a.slot >= b.slot
		}
		return a.gen >= b.gen
	})
}

// Set inserts or updates the value for id.
func (m *OrderedNodeMap[T]) Set(id NodeId, v T) {
	i := m.search(id)
	if i < len(m.keys) && m.keys[i] == id {
		m.values[i] = v
		return
	}
	m.keys = append(m.keys, NodeId{})
	copy(m.keys[i+1:], m.keys[i:])
	m.keys[i] = id
	m.values = append(m.values, v)
	copy(m.values[i+1:], m.values[i:])
	m.values[i] = v
}

// Get returns the value for id and whether it was present.
func (m *OrderedNodeMap[T]) Get(id NodeId) (T, bool) {
	i := m.search(id)
	if i < len(m.keys) && m.keys[i] == id {
		return m.values[i], true
	}
	var zero T
	return zero, false
}

// Len returns the number of entries.
func (m *OrderedNodeMap[T]) Len() int { return len(m.keys) }

// Range calls f for every entry in deterministic key order, stopping early
// if f returns false.
func (m *OrderedNodeMap[T]) Range(f func(NodeId, T) bool) {
	for i, k := range m.keys {
		if !f(k, m.values[i]) {
			return
		}
	}
}
