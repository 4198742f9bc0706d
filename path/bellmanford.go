package path

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/kerr"
)

// BellmanFord computes shortest distances from source, tolerating negative
// edge weights. If the final pass detects a negative cycle reachable from
// source, the whole result is discarded: BellmanFord returns a nil Result
// with a nil error, since no per-node distance is meaningful and the nil
// answer is the cycle signal rather than a failure.
func BellmanFord[A any, W graph.Weight](g *graph.Graph[A, W], source graph.NodeId) (*Result[W], error) {
	if !g.ContainsNode(source) {
		return nil, kerr.New(kerr.NodeNotFound, "bellman_ford: source %s", source)
	}
	edges := g.Edges()
	ids := g.NodeIds()

	res := &Result[W]{
		Source: source,
		Dist:   graph.NodeMap[W]{source: 0},
		Prev:   graph.NodeMap[graph.NodeId]{},
	}

	relaxOnce := func(src, tgt graph.NodeId, w W) bool {
		d, ok := res.Dist[src]
		if !ok {
			return false
		}
		cand := d + w
		cur, seen := res.Dist[tgt]
		if !seen || cand < cur {
			res.Dist[tgt] = cand
			res.Prev[tgt] = src
			return true
		}
		return false
	}

	for i := 0; i < len(ids)-1; i++ {
		changed := false
		for _, e := range edges {
			if relaxOnce(e.Src, e.Tgt, e.Weight) {
				changed = true
			}
			if !g.IsDirected() {
				if relaxOnce(e.Tgt, e.Src, e.Weight) {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	for _, e := range edges {
		if d, ok := res.Dist[e.Src]; ok {
			if _, seen := res.Dist[e.Tgt]; !seen || d+e.Weight < res.Dist[e.Tgt] {
				return nil, nil
			}
		}
		if !g.IsDirected() {
			if d, ok := res.Dist[e.Tgt]; ok {
				if _, seen := res.Dist[e.Src]; !seen || d+e.Weight < res.Dist[e.Src] {
					return nil, nil
				}
			}
		}
	}

	return res, nil
}
