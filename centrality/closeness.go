package centrality

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/internal/pqueue"
)

// singleSourceDistances runs a Dijkstra-shaped shortest-path scan from src,
// treating every edge weight as its float64 projection (so this helper
// serves both weighted closeness/harmonic and unweighted callers that pass
// an all-ones weight type).
func singleSourceDistances[A any, W graph.Weight](g *graph.Graph[A, W], src graph.NodeId) graph.NodeMap[float64] {
	dist := graph.NodeMap[float64]{src: 0}
	visited := make(map[graph.NodeId]bool)
	pq := pqueue.New[graph.NodeId](g.NodeCount())
	pq.Push(src, 0)
	for pq.Len() > 0 {
		u, _, _ := pq.Pop()
		if visited[u] {
			continue
		}
		visited[u] = true
		for _, eid := range g.IncidentEdges(u) {
			s, t, ok := g.Endpoints(eid)
			if !ok {
				continue
			}
			v := t
			if s != u {
				v = s
			}
			w, _ := g.EdgeWeight(eid)
			cand := dist[u] + float64(w)
			cur, seen := dist[v]
			if !seen || cand < cur {
				dist[v] = cand
				pq.Push(v, cand)
			}
		}
	}
	return dist
}

// Closeness computes the sum of reciprocal reachable distances from each
// node (the harmonic-closeness convention, so unreachable nodes on a
// disconnected graph simply contribute nothing rather than requiring a
// finite-diameter normalization).
func Closeness[A any, W graph.Weight](g *graph.Graph[A, W]) (Scores, error) {
	if err := requireNonEmpty(g, "closeness_centrality"); err != nil {
		return nil, err
	}
	out := make(Scores, g.NodeCount())
	for _, u := range g.NodeIds() {
		dist := singleSourceDistances(g, u)
		var sum float64
		for v, d := range dist {
			if v == u || d <= 0 {
				continue
			}
			sum += 1 / d
		}
		out[u] = sum
	}
	return out, nil
}

// Harmonic computes Σ_{v≠u} 1/d(u,v) over finite reachable distances, the
// same formula as Closeness under its harmonic convention; kept as a
// separate named entry point since callers reach for "harmonic centrality"
// and "closeness centrality" as distinct, independently documented
// measures.
func Harmonic[A any, W graph.Weight](g *graph.Graph[A, W]) (Scores, error) {
	return Closeness(g)
}
