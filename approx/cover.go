package approx

import (
	"sort"

	"github.com/kestrelgraph/kestrel/graph"
)

// MinWeightedVertexCover greedily covers all edges: while uncovered edges
// remain, take the node covering the most of them (lowest attribute weight
// per covered edge when weightOf is non-nil), add it to the cover, and mark
// its incident edges covered.
func MinWeightedVertexCover[A any, W graph.Weight](g *graph.Graph[A, W], weightOf func(graph.NodeId, A) float64) []graph.NodeId {
	ridx := graph.Reindex(g)
	n := ridx.N()

	weight := make([]float64, n)
	for _, entry := range g.Nodes() {
		w := 1.0
		if weightOf != nil {
			w = weightOf(entry.ID, entry.Attr)
		}
		weight[ridx.ToIndex[entry.ID]] = w
	}

	type edge struct{ u, v int }
	var edges []edge
	incident := make([][]int, n)
	for _, e := range g.Edges() {
		i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
		if i == j {
			continue
		}
		k := len(edges)
		edges = append(edges, edge{u: i, v: j})
		incident[i] = append(incident[i], k)
		incident[j] = append(incident[j], k)
	}

	covered := make([]bool, len(edges))
	remaining := len(edges)
	inCover := make([]bool, n)
	var cover []int

	for remaining > 0 {
		best, bestScore := -1, 0.0
		for u := 0; u < n; u++ {
			if inCover[u] {
				continue
			}
			count := 0
			for _, k := range incident[u] {
				if !covered[k] {
					count++
				}
			}
			if count == 0 {
				continue
			}
			// Higher coverage per unit weight wins; index order breaks ties.
			score := float64(count) / weight[u]
			if best < 0 || score > bestScore {
				best, bestScore = u, score
			}
		}
		if best < 0 {
			break
		}
		inCover[best] = true
		cover = append(cover, best)
		for _, k := range incident[best] {
			if !covered[k] {
				covered[k] = true
				remaining--
			}
		}
	}
	sort.Ints(cover)

	out := make([]graph.NodeId, len(cover))
	for i, u := range cover {
		out[i] = ridx.ToID[u]
	}
	return out
}

// MatchedEdge is one edge of a matching.
type MatchedEdge struct {
	U, V graph.NodeId
}

// MinMaximalMatching scans edges first-fit in live-edge order, taking an
// edge whenever neither endpoint is matched yet. The result is maximal (no
// edge can be added) though not minimum.
func MinMaximalMatching[A any, W graph.Weight](g *graph.Graph[A, W]) []MatchedEdge {
	matched := make(map[graph.NodeId]bool, g.NodeCount())
	var out []MatchedEdge
	for _, e := range g.Edges() {
		if e.Src == e.Tgt || matched[e.Src] || matched[e.Tgt] {
			continue
		}
		matched[e.Src] = true
		matched[e.Tgt] = true
		out = append(out, MatchedEdge{U: e.Src, V: e.Tgt})
	}
	return out
}
