package path

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/internal/pqueue"
	"github.com/kestrelgraph/kestrel/kerr"
)

// Heuristic estimates the remaining cost from a node to the goal. It must be
// admissible (never overestimate) for A* to guarantee an optimal path.
type Heuristic[W graph.Weight] func(n graph.NodeId) float64

// AStar finds the shortest path from source to goal, guided by heuristic h,
// which must be admissible (and the edge weights non-negative: a negative
// weight met during relaxation surfaces InvalidGraph, as in Dijkstra).
// A zero heuristic degenerates A* into Dijkstra restricted to the goal.
func AStar[A any, W graph.Weight](g *graph.Graph[A, W], source, goal graph.NodeId, h Heuristic[W]) (*Result[W], bool, error) {
	if !g.ContainsNode(source) {
		return nil, false, kerr.New(kerr.NodeNotFound, "astar: source %s", source)
	}
	if !g.ContainsNode(goal) {
		return nil, false, kerr.New(kerr.NodeNotFound, "astar: goal %s", goal)
	}

	res := &Result[W]{
		Source: source,
		Dist:   graph.NodeMap[W]{source: 0},
		Prev:   graph.NodeMap[graph.NodeId]{},
	}
	closed := make(map[graph.NodeId]bool)
	open := pqueue.New[graph.NodeId](g.NodeCount())
	open.Push(source, h(source))

	for open.Len() > 0 {
		u, _, _ := open.Pop()
		if u == goal {
			return res, true, nil
		}
		if closed[u] {
			continue
		}
		closed[u] = true
		uDist := res.Dist[u]

		for _, eid := range g.IncidentEdges(u) {
			src, tgt, ok := g.Endpoints(eid)
			if !ok {
				continue
			}
			v := tgt
			if src != u {
				v = src
			}
			w, _ := g.EdgeWeight(eid)
			if float64(w) < 0 {
				return nil, false, kerr.New(kerr.InvalidGraph, "astar: negative edge %s->%s", src, tgt)
			}
			cand := uDist + w
			cur, seen := res.Dist[v]
			if !seen || cand < cur {
				res.Dist[v] = cand
				res.Prev[v] = u
				open.Push(v, float64(cand)+h(v))
			}
		}
	}
	return res, false, nil
}
