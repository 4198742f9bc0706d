package approx

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/kerr"
	"github.com/kestrelgraph/kestrel/path"
)

// LocalNodeConnectivity lower-bounds the number of vertex-disjoint paths
// between source and target: BFS finds an s-t path, its internal vertices
// are blocked, and the search repeats until no path remains. Equal endpoints
// return 0; a direct source-target edge counts as one path before the
// search starts.
func LocalNodeConnectivity[A any, W graph.Weight](g *graph.Graph[A, W], source, target graph.NodeId) (int, error) {
	if !g.ContainsNode(source) {
		return 0, kerr.New(kerr.NodeNotFound, "local_node_connectivity: source %s", source)
	}
	if !g.ContainsNode(target) {
		return 0, kerr.New(kerr.NodeNotFound, "local_node_connectivity: target %s", target)
	}
	if source == target {
		return 0, nil
	}

	count := 0
	if _, ok := g.FindEdge(source, target); ok {
		// A direct edge is one vertex-disjoint path with no internal
		// vertex to block; count it once and forbid that hop below.
		count++
	}

	blocked := make(map[graph.NodeId]bool)
	for {
		p, ok := bfsPathAvoiding(g, source, target, blocked)
		if !ok {
			return count, nil
		}
		count++
		for _, v := range p[1 : len(p)-1] {
			blocked[v] = true
		}
	}
}

// bfsPathAvoiding finds a shortest s-t path whose internal vertices avoid
// the blocked set, never taking the direct s->t hop (the caller accounts for
// that edge separately).
func bfsPathAvoiding[A any, W graph.Weight](g *graph.Graph[A, W], source, target graph.NodeId, blocked map[graph.NodeId]bool) ([]graph.NodeId, bool) {
	parent := graph.NodeMap[graph.NodeId]{source: source}
	queue := []graph.NodeId{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u) {
			if blocked[v] {
				continue
			}
			if u == source && v == target {
				continue
			}
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			if v == target {
				var rev []graph.NodeId
				for cur := target; cur != source; cur = parent[cur] {
					rev = append(rev, cur)
				}
				rev = append(rev, source)
				for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
					rev[i], rev[j] = rev[j], rev[i]
				}
				return rev, true
			}
			queue = append(queue, v)
		}
	}
	return nil, false
}

// DiameterBound lower-bounds the diameter: one Dijkstra sweep from an
// arbitrary live node, returning the largest finite distance found. The true
// diameter is at least this value.
func DiameterBound[A any, W graph.Weight](g *graph.Graph[A, W]) (float64, error) {
	ids := g.NodeIds()
	if len(ids) == 0 {
		return 0, kerr.New(kerr.InvalidGraph, "diameter_bound: graph is empty")
	}
	res, err := path.Dijkstra(g, ids[0])
	if err != nil {
		return 0, err
	}
	var max float64
	for _, d := range res.Dist {
		if fd := float64(d); fd > max {
			max = fd
		}
	}
	return max, nil
}
