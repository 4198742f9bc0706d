// Package pool implements optional memory pools: scoped acquire/release for
// the temporary NodeSet/NodeMap/NodeQueue structures BFS/DFS/centrality/
// community algorithms allocate on every call, built on sync.Pool's
// per-goroutine-friendly reuse. Pooling is advisory: every algorithm in
// this module behaves identically whether or not its caller routes through
// a pool, since Acquire always hands back a valid, empty value even on a
// cold pool.
package pool

import (
	"sync"

	"github.com/kestrelgraph/kestrel/graph"
)

// NodeSet is a temporary set of NodeIds, as used by visited-tracking in
// traversal and centrality algorithms.
type NodeSet map[graph.NodeId]struct{}

// NodeSetPool hands out scratch NodeSets and reclaims them on Release.
type NodeSetPool struct {
	pool sync.Pool
}

// NewNodeSetPool constructs a pool. maxSize is accepted as a retention hint
// but sync.Pool already self-bounds under memory pressure, so it is not
// separately enforced here.
func NewNodeSetPool(maxSize int) *NodeSetPool {
	return &NodeSetPool{pool: sync.Pool{New: func() any { return make(NodeSet) }}}
}

// Acquire returns a cleared NodeSet and a release func the caller must call
// (typically via defer) once the set is no longer needed.
func (p *NodeSetPool) Acquire() (NodeSet, func()) {
	s := p.pool.Get().(NodeSet)
	for k := range s {
		delete(s, k)
	}
	return s, func() { p.pool.Put(s) }
}

// NodeMap is a temporary NodeId-keyed scratch map, as used by distance and
// parent tracking in traversal algorithms.
type NodeMap map[graph.NodeId]float64

// NodeMapPool hands out scratch NodeMaps and reclaims them on Release.
type NodeMapPool struct {
	pool sync.Pool
}

// NewNodeMapPool constructs a pool.
func NewNodeMapPool(maxSize int) *NodeMapPool {
	return &NodeMapPool{pool: sync.Pool{New: func() any { return make(NodeMap) }}}
}

// Acquire returns a cleared NodeMap and a release func.
func (p *NodeMapPool) Acquire() (NodeMap, func()) {
	m := p.pool.Get().(NodeMap)
	for k := range m {
		delete(m, k)
	}
	return m, func() { p.pool.Put(m) }
}

// NodeQueue is a temporary FIFO queue of NodeIds, as used by BFS.
type NodeQueue []graph.NodeId

// NodeQueuePool hands out scratch NodeQueues and reclaims them on Release.
type NodeQueuePool struct {
	pool sync.Pool
}

// NewNodeQueuePool constructs a pool.
func NewNodeQueuePool(maxSize int) *NodeQueuePool {
	return &NodeQueuePool{pool: sync.Pool{New: func() any { q := make(NodeQueue, 0, 64); return &q }}}
}

// Acquire returns an empty NodeQueue and a release func.
func (p *NodeQueuePool) Acquire() (*NodeQueue, func()) {
	q := p.pool.Get().(*NodeQueue)
	*q = (*q)[:0]
	return q, func() { p.pool.Put(q) }
}

// Default pools: one shared package-level instance per scratch type, safe
// for concurrent use since sync.Pool already is.
var (
	DefaultNodeSetPool   = NewNodeSetPool(64)
	DefaultNodeMapPool   = NewNodeMapPool(64)
	DefaultNodeQueuePool = NewNodeQueuePool(64)
)
