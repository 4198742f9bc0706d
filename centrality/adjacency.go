package centrality

import "github.com/kestrelgraph/kestrel/graph"

// arc is one directed hop in a compact-index adjacency snapshot.
type arc struct {
	to int
	w  float64
}

// outArcs snapshots g into per-node outgoing arc lists over compact indices.
// Undirected edges contribute an arc in both directions; a self-loop
// contributes a single arc regardless of discipline.
func outArcs[A any, W graph.Weight](g *graph.Graph[A, W], ridx graph.Reindexed) [][]arc {
	adj := make([][]arc, ridx.N())
	for _, e := range g.Edges() {
		i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
		adj[i] = append(adj[i], arc{to: j, w: float64(e.Weight)})
		if !g.IsDirected() && i != j {
			adj[j] = append(adj[j], arc{to: i, w: float64(e.Weight)})
		}
	}
	return adj
}

// inArcs snapshots g's incoming adjacency: inArcs[v] lists (u, w) for every
// edge u->v. Identical to outArcs for undirected graphs.
func inArcs[A any, W graph.Weight](g *graph.Graph[A, W], ridx graph.Reindexed) [][]arc {
	if !g.IsDirected() {
		return outArcs(g, ridx)
	}
	adj := make([][]arc, ridx.N())
	for _, e := range g.Edges() {
		i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
		adj[j] = append(adj[j], arc{to: i, w: float64(e.Weight)})
	}
	return adj
}

// scoresFromVec maps a compact-index vector back into a NodeMap result.
func scoresFromVec(ridx graph.Reindexed, vec []float64) Scores {
	out := make(Scores, len(vec))
	for i, id := range ridx.ToID {
		out[id] = vec[i]
	}
	return out
}
