package graph

import "github.com/kestrelgraph/kestrel/kerr"

// Subgraph returns a new graph over the given node subset, including only
// edges with both endpoints in the subset. Returns nil if any id is unknown;
// TrySubgraph reports that case as InvalidGraph.
func (g *Graph[A, W]) Subgraph(nodes []NodeId) *Graph[A, W] {
	out, _ := g.trySubgraph(nodes)
	return out
}

// TrySubgraph is Subgraph's checked variant.
func (g *Graph[A, W]) TrySubgraph(nodes []NodeId) (*Graph[A, W], error) {
	return g.trySubgraph(nodes)
}

func (g *Graph[A, W]) trySubgraph(nodes []NodeId) (*Graph[A, W], error) {
	out := New[A, W](g.dir)
	idMap := make(map[NodeId]NodeId, len(nodes))
	set := make(map[NodeId]bool, len(nodes))
	for _, id := range nodes {
		attr, ok := g.NodeAttr(id)
		if !ok {
			return nil, kerr.New(kerr.InvalidGraph, "subgraph: unknown node %s", id)
		}
		if set[id] {
			continue
		}
		set[id] = true
		idMap[id] = out.AddNode(attr)
	}
	for _, e := range g.Edges() {
		if set[e.Src] && set[e.Tgt] {
			out.AddEdge(idMap[e.Src], idMap[e.Tgt], e.Weight)
		}
	}
	return out, nil
}

// InducedSubgraph is equivalent to Subgraph over an unordered node set.
func (g *Graph[A, W]) InducedSubgraph(set map[NodeId]bool) (*Graph[A, W], error) {
	ids := make([]NodeId, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return g.trySubgraph(ids)
}

// KHopNeighbors returns a BFS-ordered list of nodes reachable from start
// within k hops (inclusive of start).
func (g *Graph[A, W]) KHopNeighbors(start NodeId, k int) []NodeId {
	if !g.ContainsNode(start) {
		return nil
	}
	visited := map[NodeId]bool{start: true}
	order := []NodeId{start}
	frontier := []NodeId{start}
	for depth := 0; depth < k && len(frontier) > 0; depth++ {
		var next []NodeId
		for _, u := range frontier {
			for _, v := range g.Neighbors(u) {
				if !visited[v] {
					visited[v] = true
					order = append(order, v)
					next = append(next, v)
				}
			}
		}
		frontier = next
	}
	return order
}

// EgoGraph returns the induced subgraph of every node within radius hops of
// center (a BFS frontier expansion).
func (g *Graph[A, W]) EgoGraph(center NodeId, radius int) (*Graph[A, W], error) {
	nodes := g.KHopNeighbors(center, radius)
	return g.trySubgraph(nodes)
}

// ConnectedComponent returns the nodes reachable from start over the
// undirected projection of g (weakly connected for directed inputs), via
// BFS over Neighbors/IncomingNeighbors combined.
func (g *Graph[A, W]) ConnectedComponent(start NodeId) []NodeId {
	if !g.ContainsNode(start) {
		return nil
	}
	visited := map[NodeId]bool{start: true}
	order := []NodeId{start}
	queue := []NodeId{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		neighbors := g.Neighbors(u)
		if g.dir == Directed {
			neighbors = append(append([]NodeId(nil), neighbors...), g.IncomingNeighbors(u)...)
		}
		for _, v := range neighbors {
			if !visited[v] {
				visited[v] = true
				order = append(order, v)
				queue = append(queue, v)
			}
		}
	}
	return order
}

// ComponentSubgraph returns the induced subgraph of start's connected
// component.
func (g *Graph[A, W]) ComponentSubgraph(start NodeId) (*Graph[A, W], error) {
	return g.trySubgraph(g.ConnectedComponent(start))
}
