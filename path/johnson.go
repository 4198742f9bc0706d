package path

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/internal/pqueue"
)

// Johnson computes all-pairs shortest distances via reweighting: Bellman-
// Ford from a virtual source (implemented here as a simultaneous relaxation
// seeded at distance 0 for every real node, equivalent to adding a virtual
// source with zero-weight edges to each node) gives potentials h(v); every
// edge (u, v, w) is reweighted to w + h(u) - h(v), which is non-negative
// whenever g has no negative cycle; Dijkstra then runs once per source on
// the reweighted costs, and each recovered distance is un-reweighted via
// dist(u, v) = dist'(u, v) - h(u) + h(v). Preferred over repeated Bellman-
// Ford when the graph is sparse and mostly non-negative. If the potential
// pass detects a negative cycle, the whole result is nil (with a nil
// error), matching BellmanFord's discarded-result convention.
func Johnson[A any, W graph.Weight](g *graph.Graph[A, W]) (*AllPairs[W], error) {
	ridx := graph.Reindex(g)
	n := ridx.N()

	h := make([]float64, n) // every real node starts at distance 0 from the virtual source
	for iter := 0; iter < n; iter++ {
		changed := false
		for _, e := range g.Edges() {
			i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
			if h[i]+float64(e.Weight) < h[j] {
				h[j] = h[i] + float64(e.Weight)
				changed = true
			}
			if !g.IsDirected() {
				if h[j]+float64(e.Weight) < h[i] {
					h[i] = h[j] + float64(e.Weight)
					changed = true
				}
			}
		}
		if !changed {
			break
		}
		if iter == n-1 {
			return nil, nil
		}
	}

	// Adjacency with reweighted costs, built once and reused for every source.
	type arc struct {
		to   int
		cost float64
	}
	adj := make([][]arc, n)
	for _, e := range g.Edges() {
		i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
		adj[i] = append(adj[i], arc{to: j, cost: float64(e.Weight) + h[i] - h[j]})
		if !g.IsDirected() {
			adj[j] = append(adj[j], arc{to: i, cost: float64(e.Weight) + h[j] - h[i]})
		}
	}

	dist := make([][]graph.Option[W], n)
	next := make([][]graph.Option[int], n)
	for i := range dist {
		dist[i] = make([]graph.Option[W], n)
		next[i] = make([]graph.Option[int], n)
	}

	for src := 0; src < n; src++ {
		dPrime := make([]float64, n)
		done := make([]bool, n)
		reached := make([]bool, n)
		pred := make([]int, n)
		for i := range pred {
			pred[i] = -1
		}
		reached[src] = true
		pq := pqueue.New[int](n)
		pq.Push(src, 0)
		for pq.Len() > 0 {
			u, _, _ := pq.Pop()
			if done[u] {
				continue
			}
			done[u] = true
			for _, a := range adj[u] {
				cand := dPrime[u] + a.cost
				if !reached[a.to] || cand < dPrime[a.to] {
					dPrime[a.to] = cand
					reached[a.to] = true
					pred[a.to] = u
					pq.Push(a.to, cand)
				}
			}
		}

		dist[src][src] = graph.Some(W(0))
		next[src][src] = graph.Some(src)
		for tgt := 0; tgt < n; tgt++ {
			if tgt == src || !reached[tgt] {
				continue
			}
			real := dPrime[tgt] - h[src] + h[tgt]
			dist[src][tgt] = graph.Some(W(real))

			cur := tgt
			for pred[cur] != src {
				cur = pred[cur]
			}
			next[src][tgt] = graph.Some(cur)
		}
	}

	return &AllPairs[W]{Order: ridx.ToID, Dist: dist, Next: next}, nil
}
