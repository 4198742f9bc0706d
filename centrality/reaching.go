package centrality

import (
	"github.com/kestrelgraph/kestrel/graph"
)

// LocalReaching computes, for each node, the fraction of the other n-1
// nodes reachable from it by BFS within maxDepth hops (maxDepth <= 0 means
// unbounded).
func LocalReaching[A any, W graph.Weight](g *graph.Graph[A, W], maxDepth int) (Scores, error) {
	if err := requireNonEmpty(g, "local_reaching_centrality"); err != nil {
		return nil, err
	}
	ridx := graph.Reindex(g)
	n := ridx.N()
	if n == 1 {
		return Scores{ridx.ToID[0]: 0}, nil
	}
	adj := hopAdjacency(g, ridx)

	out := make(Scores, n)
	dist := make([]int, n)
	for s := 0; s < n; s++ {
		for i := range dist {
			dist[i] = -1
		}
		dist[s] = 0
		queue := []int{s}
		reached := 0
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			if maxDepth > 0 && dist[v] >= maxDepth {
				continue
			}
			for _, w := range adj[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					reached++
					queue = append(queue, w)
				}
			}
		}
		out[ridx.ToID[s]] = float64(reached) / float64(n-1)
	}
	return out, nil
}

// GlobalReaching computes the global reaching centrality
// GRC = Σ_u (max_local - local(u)) / (n-1): how much the most-reaching node
// dominates the rest (0 for symmetric structures like cycles, 1 for a star
// hub in a directed out-star).
func GlobalReaching[A any, W graph.Weight](g *graph.Graph[A, W], maxDepth int) (float64, error) {
	local, err := LocalReaching(g, maxDepth)
	if err != nil {
		return 0, err
	}
	n := len(local)
	if n < 2 {
		return 0, nil
	}
	var max float64
	for _, v := range local {
		if v > max {
			max = v
		}
	}
	var sum float64
	for _, v := range local {
		sum += max - v
	}
	return sum / float64(n-1), nil
}
