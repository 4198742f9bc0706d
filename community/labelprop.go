package community

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/internal/rng"
)

// LabelPropagation assigns each node the label most frequent among its
// neighbors, sweeping nodes in a freshly shuffled order each iteration until
// no label changes or maxIter sweeps elapse. Labels start as each node's
// compact index; ties break toward the lowest label, which keeps the outcome
// deterministic for a given seed.
func LabelPropagation[A any, W graph.Weight](g *graph.Graph[A, W], maxIter int, seed int64) graph.NodeMap[int] {
	ridx := graph.Reindex(g)
	n := ridx.N()
	if maxIter <= 0 {
		maxIter = 100
	}
	r := rng.FromSeed(seed)

	adj := make([][]int, n)
	for _, e := range g.Edges() {
		i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
		adj[i] = append(adj[i], j)
		if !g.IsDirected() && i != j {
			adj[j] = append(adj[j], i)
		}
	}

	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	for iter := 0; iter < maxIter; iter++ {
		rng.ShuffleInts(order, r)
		changed := false
		for _, u := range order {
			if len(adj[u]) == 0 {
				continue
			}
			counts := make(map[int]int, len(adj[u]))
			for _, v := range adj[u] {
				counts[label[v]]++
			}
			best, bestCount := label[u], 0
			for l, c := range counts {
				if c > bestCount || (c == bestCount && l < best) {
					best, bestCount = l, c
				}
			}
			if best != label[u] {
				label[u] = best
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	out := make(graph.NodeMap[int], n)
	for i, id := range ridx.ToID {
		out[id] = label[i]
	}
	return out
}
