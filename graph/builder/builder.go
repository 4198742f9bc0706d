package builder

import (
	"github.com/kestrelgraph/kestrel/graph"
)

// edgeSpec is a pending edge referencing node indices in declaration order
// (the order add_node calls were made), resolved against the node list at
// Build time.
type edgeSpec[W graph.Weight] struct {
	u, v int
	w    W
}

// Builder is a fluent bulk-construction façade. Nodes and edges are staged
// and only materialized (and validated) on Build().
type Builder[A any, W graph.Weight] struct {
	dir              graph.Direction
	capNodes         int
	capEdges         int
	allowSelfLoops   bool
	allowParallel    bool
	nodeAttrs        []A
	edges            []edgeSpec[W]
}

// New starts a fluent builder for a graph of the given direction. Self-loops
// and parallel edges are allowed by default.
func New[A any, W graph.Weight](dir graph.Direction) *Builder[A, W] {
	return &Builder[A, W]{dir: dir, allowSelfLoops: true, allowParallel: true}
}

// CapacityNodes reserves storage for n nodes (a hint; does not create nodes).
func (b *Builder[A, W]) CapacityNodes(n int) *Builder[A, W] { b.capNodes = n; return b }

// CapacityEdges reserves storage for m edges (a hint).
func (b *Builder[A, W]) CapacityEdges(m int) *Builder[A, W] { b.capEdges = m; return b }

// AllowSelfLoops toggles whether Build accepts an edge whose two indices
// are equal. Default true.
func (b *Builder[A, W]) AllowSelfLoops(ok bool) *Builder[A, W] { b.allowSelfLoops = ok; return b }

// AllowParallelEdges toggles whether Build accepts more than one edge
// between the same unordered pair of indices. Default true.
func (b *Builder[A, W]) AllowParallelEdges(ok bool) *Builder[A, W] { b.allowParallel = ok; return b }

// AddNode stages a node, returning its declaration index (0-based, in call
// order) for use by AddEdge.
func (b *Builder[A, W]) AddNode(attr A) int {
	b.nodeAttrs = append(b.nodeAttrs, attr)
	return len(b.nodeAttrs) - 1
}

// AddNodes stages every attribute in attrs, returning their declaration
// indices in order.
func (b *Builder[A, W]) AddNodes(attrs []A) []int {
	idxs := make([]int, len(attrs))
	for i, a := range attrs {
		idxs[i] = b.AddNode(a)
	}
	return idxs
}

// AddEdge stages an edge between two previously-declared node indices.
func (b *Builder[A, W]) AddEdge(srcIdx, tgtIdx int, w W) *Builder[A, W] {
	b.edges = append(b.edges, edgeSpec[W]{u: srcIdx, v: tgtIdx, w: w})
	return b
}

// AddEdges stages every (srcIdx, tgtIdx, weight) triple in specs.
func (b *Builder[A, W]) AddEdges(specs []graph.EdgeSpec[W]) *Builder[A, W] {
	for _, s := range specs {
		b.AddEdge(int(s.Src.Index()), int(s.Tgt.Index()), s.Weight)
	}
	return b
}

// Build validates every staged edge index against the declared node list
// and the self-loop/parallel-edge policy, then materializes a fresh graph.
// Validation failures surface as InvalidArgument and never partially apply:
// a failed Build returns a nil graph.
func (b *Builder[A, W]) Build() (*graph.Graph[A, W], error) {
	n := len(b.nodeAttrs)

	seen := make(map[[2]int]bool, len(b.edges))
	for _, es := range b.edges {
		if es.u < 0 || es.u >= n {
			return nil, errBadIndex("Build", es.u, n)
		}
		if es.v < 0 || es.v >= n {
			return nil, errBadIndex("Build", es.v, n)
		}
		if es.u == es.v && !b.allowSelfLoops {
			return nil, errSelfLoop("Build", es.u)
		}
		key := [2]int{es.u, es.v}
		if b.dir == graph.Undirected && es.u > es.v {
			key = [2]int{es.v, es.u}
		}
		if seen[key] && !b.allowParallel {
			return nil, errParallelEdge("Build", es.u, es.v)
		}
		seen[key] = true
	}

	g := graph.WithCapacity[A, W](b.dir, max(n, b.capNodes), max(len(b.edges), b.capEdges))
	ids := make([]graph.NodeId, n)
	for i, a := range b.nodeAttrs {
		ids[i] = g.AddNode(a)
	}
	for _, es := range b.edges {
		g.AddEdge(ids[es.u], ids[es.v], es.w)
	}
	return g, nil
}
