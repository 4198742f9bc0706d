package path

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/internal/pqueue"
	"github.com/kestrelgraph/kestrel/kerr"
)

// Result is a single-source shortest-path answer: Dist holds the minimum
// cost to every reached node, Prev holds predecessor links for path
// reconstruction via PathTo. A node absent from Dist was unreachable.
type Result[W graph.Weight] struct {
	Source graph.NodeId
	Dist   graph.NodeMap[W]
	Prev   graph.NodeMap[graph.NodeId]
}

// PathTo reconstructs the shortest path from Source to target, or ok=false
// if target was never reached.
func (r *Result[W]) PathTo(target graph.NodeId) ([]graph.NodeId, bool) {
	if _, ok := r.Dist[target]; !ok {
		return nil, false
	}
	if target == r.Source {
		return []graph.NodeId{r.Source}, true
	}
	var rev []graph.NodeId
	cur := target
	for cur != r.Source {
		rev = append(rev, cur)
		p, ok := r.Prev[cur]
		if !ok {
			return nil, false
		}
		cur = p
	}
	rev = append(rev, r.Source)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, true
}

// Dijkstra computes shortest distances from source over g. A negative edge
// weight is rejected when relaxation reaches it: edges in parts of the
// graph the search never touches do not fail the run.
func Dijkstra[A any, W graph.Weight](g *graph.Graph[A, W], source graph.NodeId) (*Result[W], error) {
	if !g.ContainsNode(source) {
		return nil, kerr.New(kerr.NodeNotFound, "dijkstra: source %s", source)
	}

	res := &Result[W]{
		Source: source,
		Dist:   graph.NodeMap[W]{source: 0},
		Prev:   graph.NodeMap[graph.NodeId]{},
	}
	visited := make(map[graph.NodeId]bool)
	pq := pqueue.New[graph.NodeId](g.NodeCount())
	pq.Push(source, 0)

	for pq.Len() > 0 {
		u, d, _ := pq.Pop()
		if visited[u] {
			continue
		}
		visited[u] = true
		uDist := res.Dist[u]
		_ = d

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
				return nil, kerr.New(kerr.InvalidGraph, "dijkstra: negative edge %s->%s", src, tgt)
			}
			cand := uDist + w
			cur, seen := res.Dist[v]
			if !seen || cand < cur {
				res.Dist[v] = cand
				res.Prev[v] = u
				pq.Push(v, float64(cand))
			}
		}
	}
	return res, nil
}
