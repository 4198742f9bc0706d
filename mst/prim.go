package mst

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/internal/pqueue"
)

// Prim computes a minimum spanning forest of g: one tree per connected
// component, grown by repeatedly extracting the cheapest edge crossing the
// current tree's boundary. Growing restarts from every unvisited node since
// graph.Graph makes no connectivity guarantee.
func Prim[A any, W graph.Weight](g *graph.Graph[A, W]) []graph.MstEdge[W] {
	visited := make(map[graph.NodeId]bool)
	var forest []graph.MstEdge[W]

	grow := func(root graph.NodeId) {
		visited[root] = true
		pq := pqueue.New[graph.EdgeId](g.NodeCount())
		pushFrontier := func(u graph.NodeId) {
			for _, eid := range g.IncidentEdges(u) {
				src, tgt, ok := g.Endpoints(eid)
				if !ok {
					continue
				}
				v := tgt
				if src != u {
					v = src
				}
				if !visited[v] {
					w, _ := g.EdgeWeight(eid)
					pq.Push(eid, float64(w))
				}
			}
		}
		pushFrontier(root)
		for pq.Len() > 0 {
			eid, _, _ := pq.Pop()
			src, tgt, ok := g.Endpoints(eid)
			if !ok {
				continue
			}
			var next graph.NodeId
			switch {
			case !visited[src]:
				next = src
			case !visited[tgt]:
				next = tgt
			default:
				continue // both endpoints already in the tree: would form a cycle
			}
			w, _ := g.EdgeWeight(eid)
			forest = append(forest, graph.MstEdge[W]{U: src, V: tgt, Weight: w})
			visited[next] = true
			pushFrontier(next)
		}
	}

	for _, id := range g.NodeIds() {
		if !visited[id] {
			grow(id)
		}
	}
	return forest
}
