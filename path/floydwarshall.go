package path

import "github.com/kestrelgraph/kestrel/graph"

// AllPairs is the all-pairs shortest-path answer: Dist[i][j] holds the
// distance from the i-th to the j-th node in Order, and Next[i][j] holds the
// next hop on a shortest i->j path (i itself if i==j, graph.None if
// unreachable),
// enabling path reconstruction without storing every path explicitly.
type AllPairs[W graph.Weight] struct {
	Order []graph.NodeId
	Dist  [][]graph.Option[W]
	Next  [][]graph.Option[int]
}

// PathTo reconstructs the shortest path between the i-th and j-th nodes in
// Order, or ok=false if none exists.
func (a *AllPairs[W]) PathTo(i, j int) ([]graph.NodeId, bool) {
	if _, ok := a.Dist[i][j].Get(); !ok {
		return nil, false
	}
	path := []graph.NodeId{a.Order[i]}
	cur := i
	for cur != j {
		next, ok := a.Next[cur][j].Get()
		if !ok {
			return nil, false
		}
		cur = next
		path = append(path, a.Order[cur])
	}
	return path, true
}

// FloydWarshall computes all-pairs shortest distances in O(n^3), tolerating
// negative edge weights but not negative cycles, which surface as a
// negative value on some Dist[i][i] cell for the caller to inspect.
func FloydWarshall[A any, W graph.Weight](g *graph.Graph[A, W]) AllPairs[W] {
	ridx := graph.Reindex(g)
	n := ridx.N()

	dist := make([][]graph.Option[W], n)
	next := make([][]graph.Option[int], n)
	for i := range dist {
		dist[i] = make([]graph.Option[W], n)
		next[i] = make([]graph.Option[int], n)
	}
	for i := 0; i < n; i++ {
		dist[i][i] = graph.Some(W(0))
		next[i][i] = graph.Some(i)
	}
	for _, e := range g.Edges() {
		i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
		if cur, ok := dist[i][j].Get(); !ok || e.Weight < cur {
			dist[i][j] = graph.Some(e.Weight)
			next[i][j] = graph.Some(j)
		}
		if !g.IsDirected() {
			if cur, ok := dist[j][i].Get(); !ok || e.Weight < cur {
				dist[j][i] = graph.Some(e.Weight)
				next[j][i] = graph.Some(i)
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik, ok := dist[i][k].Get()
			if !ok {
				continue
			}
			for j := 0; j < n; j++ {
				dkj, ok2 := dist[k][j].Get()
				if !ok2 {
					continue
				}
				cand := dik + dkj
				cur, ok3 := dist[i][j].Get()
				if !ok3 || cand < cur {
					dist[i][j] = graph.Some(cand)
					next[i][j] = next[i][k]
				}
			}
		}
	}

	return AllPairs[W]{Order: ridx.ToID, Dist: dist, Next: next}
}
