package community

import (
	"github.com/kestrelgraph/kestrel/centrality"
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/kerr"
)

// GirvanNewman peels the graph down to at least targetCommunities connected
// components by repeatedly removing the edge with the highest betweenness.
// When several edges tie for the maximum, the one with the smallest
// endpoint pair (in live-node order) goes, so the peel is deterministic.
// The input graph is never mutated; peeling happens on a working copy.
func GirvanNewman[A any, W graph.Weight](g *graph.Graph[A, W], targetCommunities int) ([][]graph.NodeId, error) {
	if targetCommunities < 1 {
		return nil, kerr.New(kerr.InvalidArgument, "girvan_newman: target %d < 1", targetCommunities)
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, nil
	}
	if targetCommunities > n {
		return nil, kerr.New(kerr.InvalidArgument, "girvan_newman: target %d exceeds node count %d", targetCommunities, n)
	}

	// Clone re-creates nodes in live-node order, so position i of the
	// original's NodeIds() matches position i of the copy's.
	work := g.Clone()
	origIDs := g.NodeIds()
	workIDs := work.NodeIds()
	backMap := make(map[graph.NodeId]graph.NodeId, len(workIDs))
	for i, wid := range workIDs {
		backMap[wid] = origIDs[i]
	}
	rank := make(map[graph.NodeId]int, len(workIDs))
	for i, wid := range workIDs {
		rank[wid] = i
	}

	for len(ConnectedComponents(work)) < targetCommunities {
		if work.EdgeCount() == 0 {
			break
		}
		scores, err := centrality.EdgeBetweenness(work)
		if err != nil {
			return nil, err
		}

		var bestKey centrality.EdgeKey
		bestScore, have := 0.0, false
		for key, score := range scores {
			if !have || score > bestScore || (score == bestScore && pairLess(rank, key, bestKey)) {
				bestKey, bestScore, have = key, score, true
			}
		}
		if !have {
			break
		}
		eid, ok := work.FindEdge(bestKey.U, bestKey.V)
		if !ok {
			// Undirected score maps carry both orientations; the reverse
			// lookup covers the one FindEdge missed.
			eid, ok = work.FindEdge(bestKey.V, bestKey.U)
		}
		if !ok {
			break
		}
		work.RemoveEdge(eid)
	}

	components := ConnectedComponents(work)
	out := make([][]graph.NodeId, len(components))
	for i, comp := range components {
		ids := make([]graph.NodeId, len(comp))
		for k, wid := range comp {
			ids[k] = backMap[wid]
		}
		out[i] = ids
	}
	return out, nil
}

// pairLess orders edge keys by their endpoints' live-node ranks, normalizing
// orientation so (u, v) and (v, u) compare equal-then-stable.
func pairLess(rank map[graph.NodeId]int, a, b centrality.EdgeKey) bool {
	au, av := rank[a.U], rank[a.V]
	if au > av {
		au, av = av, au
	}
	bu, bv := rank[b.U], rank[b.V]
	if bu > bv {
		bu, bv = bv, bu
	}
	if au != bu {
		return au < bu
	}
	return av < bv
}
