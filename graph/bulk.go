package graph

// AddNodesBulk appends every attribute in attrs as a new node, returning
// their ids in the same order.
func (g *Graph[A, W]) AddNodesBulk(attrs []A) []NodeId {
	ids := make([]NodeId, len(attrs))
	for i, a := range attrs {
		ids[i] = g.AddNode(a)
	}
	return ids
}

// EdgeSpec is one (src, tgt, weight) triple for bulk edge insertion.
type EdgeSpec[W Weight] struct {
	Src, Tgt NodeId
	Weight   W
}

// AddEdgesBulk appends every spec as a new edge, returning their ids in the
// same order.
func (g *Graph[A, W]) AddEdgesBulk(specs []EdgeSpec[W]) []EdgeId {
	ids := make([]EdgeId, len(specs))
	for i, s := range specs {
		ids[i] = g.AddEdge(s.Src, s.Tgt, s.Weight)
	}
	return ids
}

// ExtendNodes is an alias for AddNodesBulk kept for API symmetry with
// ExtendEdges.
func (g *Graph[A, W]) ExtendNodes(attrs []A) []NodeId { return g.AddNodesBulk(attrs) }

// ExtendEdges is an alias for AddEdgesBulk.
func (g *Graph[A, W]) ExtendEdges(specs []EdgeSpec[W]) []EdgeId { return g.AddEdgesBulk(specs) }

// RetainNodes keeps only nodes for which pred returns true, removing the
// rest (and their incident edges) atomically per node.
func (g *Graph[A, W]) RetainNodes(pred func(NodeId, A) bool) {
	for _, n := range g.Nodes() {
		if !pred(n.ID, n.Attr) {
			g.RemoveNode(n.ID)
		}
	}
}

// RetainEdges keeps only edges for which pred returns true.
func (g *Graph[A, W]) RetainEdges(pred func(EdgeId, NodeId, NodeId, W) bool) {
	for _, e := range g.Edges() {
		if !pred(e.ID, e.Src, e.Tgt, e.Weight) {
			g.RemoveEdge(e.ID)
		}
	}
}

// MapNodeAttrs produces a new graph with identical structure and each node
// attribute transformed by f. Relative node ordering (and hence NodeId
// assignment order) is preserved.
func MapNodeAttrs[A, B any, W Weight](g *Graph[A, W], f func(NodeId, A) B) *Graph[B, W] {
	out := New[B, W](g.dir)
	idMap := make(map[NodeId]NodeId, g.NodeCount())
	for _, n := range g.Nodes() {
		idMap[n.ID] = out.AddNode(f(n.ID, n.Attr))
	}
	for _, e := range g.Edges() {
		out.AddEdge(idMap[e.Src], idMap[e.Tgt], e.Weight)
	}
	return out
}

// MapEdgeWeights produces a new graph with identical structure and each edge
// weight transformed by f.
func MapEdgeWeights[A any, W, X Weight](g *Graph[A, W], f func(EdgeId, W) X) *Graph[A, X] {
	out := New[A, X](g.dir)
	idMap := make(map[NodeId]NodeId, g.NodeCount())
	for _, n := range g.Nodes() {
		idMap[n.ID] = out.AddNode(n.Attr)
	}
	for _, e := range g.Edges() {
		out.AddEdge(idMap[e.Src], idMap[e.Tgt], f(e.ID, e.Weight))
	}
	return out
}

// Clone deep-copies g: every node attribute and edge weight is duplicated
// into a fresh Graph with the same structure. Nodes and edges are re-added
// in live order, so the clone's handles are freshly assigned and match the
// original's only when nothing was ever removed from it.
func (g *Graph[A, W]) Clone() *Graph[A, W] {
	return MapNodeAttrs(g, func(_ NodeId, a A) A { return a })
}

// FilterNodes produces a new graph containing only nodes matching pred; edge
// removal follows node removal (an edge survives only if both endpoints do).
func (g *Graph[A, W]) FilterNodes(pred func(NodeId, A) bool) *Graph[A, W] {
	keep := make(map[NodeId]bool)
	for _, n := range g.Nodes() {
		if pred(n.ID, n.Attr) {
			keep[n.ID] = true
		}
	}
	return g.Subgraph(keepSlice(keep))
}

// FilterEdges produces a new graph with the same nodes and only the edges
// matching pred.
func (g *Graph[A, W]) FilterEdges(pred func(EdgeId, NodeId, NodeId, W) bool) *Graph[A, W] {
	out := New[A, W](g.dir)
	idMap := make(map[NodeId]NodeId, g.NodeCount())
	for _, n := range g.Nodes() {
		idMap[n.ID] = out.AddNode(n.Attr)
	}
	for _, e := range g.Edges() {
		if pred(e.ID, e.Src, e.Tgt, e.Weight) {
			out.AddEdge(idMap[e.Src], idMap[e.Tgt], e.Weight)
		}
	}
	return out
}

func keepSlice(keep map[NodeId]bool) []NodeId {
	out := make([]NodeId, 0, len(keep))
	for id := range keep {
		out = append(out, id)
	}
	return out
}
