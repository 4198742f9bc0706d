package graph

// NodeEntry pairs a live NodeId with its attribute, as yielded by Nodes.
type NodeEntry[A any] struct {
	ID   NodeId
	Attr A
}

// Nodes returns every live node in insertion order. Insertion order is
// stable within a single graph version; it is not guaranteed across
// mutations that remove and re-add nodes.
func (g *Graph[A, W]) Nodes() []NodeEntry[A] {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]NodeEntry[A], 0, g.nodeCount)
	for slot := range g.nodes {
		s := &g.nodes[slot]
		if s.alive {
			out = append(out, NodeEntry[A]{ID: NodeId{slot: uint32(slot), gen: s.gen}, Attr: *s.attr})
		}
	}
	return out
}

// NodeIds returns every live NodeId in insertion order.
func (g *Graph[A, W]) NodeIds() []NodeId {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]NodeId, 0, g.nodeCount)
	for slot := range g.nodes {
		s := &g.nodes[slot]
		if s.alive {
			out = append(out, NodeId{slot: uint32(slot), gen: s.gen})
		}
	}
	return out
}

// EdgeEntry describes one live edge, as yielded by Edges.
type EdgeEntry[W Weight] struct {
	ID     EdgeId
	Src    NodeId
	Tgt    NodeId
	Weight W
}

// Edges returns every live edge exactly once, even in undirected mode.
func (g *Graph[A, W]) Edges() []EdgeEntry[W] {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]EdgeEntry[W], 0, g.edgeCount)
	for slot := range g.edges {
		e := &g.edges[slot]
		if e.alive {
			out = append(out, EdgeEntry[W]{
				ID: EdgeId{slot: uint32(slot), gen: e.gen}, Src: e.src, Tgt: e.tgt, Weight: *e.weight,
			})
		}
	}
	return out
}

// Neighbors returns u's successors (directed) or all incident neighbors
// (undirected, each incident edge's far endpoint once; a self-loop yields u
// itself once).
func (g *Graph[A, W]) Neighbors(u NodeId) []NodeId {
	g.muNode.RLock()
	s, ok := g.nodeSlotFor(u)
	if !ok {
		g.muNode.RUnlock()
		return nil
	}
	out := append([]EdgeId(nil), s.out...)
	g.muNode.RUnlock()

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	result := make([]NodeId, 0, len(out))
	for _, eid := range out {
		e, ok := g.edgeSlotFor(eid)
		if !ok {
			continue
		}
		if e.src == u {
			result = append(result, e.tgt)
		} else {
			result = append(result, e.src)
		}
	}
	return result
}

// IncomingNeighbors returns u's predecessors. In undirected mode this is
// identical to Neighbors, since there is no predecessor/successor
// distinction.
func (g *Graph[A, W]) IncomingNeighbors(u NodeId) []NodeId {
	if g.dir == Undirected {
		return g.Neighbors(u)
	}
	g.muNode.RLock()
	s, ok := g.nodeSlotFor(u)
	if !ok {
		g.muNode.RUnlock()
		return nil
	}
	in := append([]EdgeId(nil), s.in...)
	g.muNode.RUnlock()

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	result := make([]NodeId, 0, len(in))
	for _, eid := range in {
		e, ok := g.edgeSlotFor(eid)
		if !ok {
			continue
		}
		result = append(result, e.src)
	}
	return result
}

// IncidentEdges returns the ids of edges incident to u (outgoing, for
// directed graphs; all incident, for undirected).
func (g *Graph[A, W]) IncidentEdges(u NodeId) []EdgeId {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	s, ok := g.nodeSlotFor(u)
	if !ok {
		return nil
	}
	return append([]EdgeId(nil), s.out...)
}

// Reindex builds a NodeId -> 0..n compact index over the graph's current
// live-node iteration order. Algorithms that allocate per-node arrays
// (Louvain, PageRank, eigenvector centrality, Brandes, ...) must use this
// instead of NodeId.Index(), which is only a dense-at-allocation-time hint
// and goes stale after any removal.
type Reindexed struct {
	ToIndex map[NodeId]int
	ToID    []NodeId
}

// Reindex snapshots g's current live nodes into a compact 0..n mapping.
func Reindex[A any, W Weight](g *Graph[A, W]) Reindexed {
	ids := g.NodeIds()
	r := Reindexed{ToIndex: make(map[NodeId]int, len(ids)), ToID: ids}
	for i, id := range ids {
		r.ToIndex[id] = i
	}
	return r
}

func (r Reindexed) N() int { return len(r.ToID) }
