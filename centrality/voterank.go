package centrality

import (
	"github.com/kestrelgraph/kestrel/graph"
)

// VoteRank selects up to k influential seed nodes one round at a time: every
// node votes its remaining voting ability for each neighbor, the highest-
// scored unselected node wins the round, and its neighbors' voting ability
// is dampened by 1/<k> (the graph's average degree) so subsequent winners
// spread out instead of clustering. k <= 0 selects as many seeds as keep a
// positive score. Ties break toward the earlier node in live-node order, so
// results are deterministic.
func VoteRank[A any, W graph.Weight](g *graph.Graph[A, W], k int) ([]graph.NodeId, error) {
	if err := requireNonEmpty(g, "voterank"); err != nil {
		return nil, err
	}
	ridx := graph.Reindex(g)
	n := ridx.N()
	adj := hopAdjacency(g, ridx)
	if k <= 0 || k > n {
		k = n
	}

	var totalDeg float64
	for _, arcs := range adj {
		totalDeg += float64(len(arcs))
	}
	damp := 0.0
	if totalDeg > 0 {
		damp = float64(n) / totalDeg // 1 / average degree
	}

	ability := make([]float64, n)
	for i := range ability {
		ability[i] = 1
	}
	selected := make([]bool, n)
	seeds := make([]graph.NodeId, 0, k)

	for round := 0; round < k; round++ {
		best, bestScore := -1, 0.0
		for u := 0; u < n; u++ {
			if selected[u] {
				continue
			}
			score := 0.0
			for _, v := range adj[u] {
				score += ability[v]
			}
			if best < 0 || score > bestScore {
				best, bestScore = u, score
			}
		}
		if best < 0 || bestScore <= 0 {
			break
		}
		selected[best] = true
		ability[best] = 0
		seeds = append(seeds, ridx.ToID[best])
		for _, v := range adj[best] {
			ability[v] -= damp
			if ability[v] < 0 {
				ability[v] = 0
			}
		}
	}
	return seeds, nil
}
