package approx

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/kerr"
	"github.com/kestrelgraph/kestrel/path"
)

// Tour is a closed walk visiting every node, with its total weight.
type Tour struct {
	Nodes []graph.NodeId // first node repeated at the end when the tour closes
	Cost  float64
}

// TSPNearestNeighbor builds a tour by iterated Dijkstra: from the current
// node, hop to the cheapest not-yet-visited node (following the shortest
// path to it, so the tour stays valid on incomplete graphs), then close the
// cycle by the shortest path back to the start. Fails with NoPath when some
// node is unreachable.
func TSPNearestNeighbor[A any, W graph.Weight](g *graph.Graph[A, W], start graph.NodeId) (*Tour, error) {
	if !g.ContainsNode(start) {
		return nil, kerr.New(kerr.NodeNotFound, "tsp_nearest_neighbor: start %s", start)
	}
	n := g.NodeCount()
	visited := map[graph.NodeId]bool{start: true}
	tour := []graph.NodeId{start}
	total := 0.0
	current := start

	for len(visited) < n {
		res, err := path.Dijkstra(g, current)
		if err != nil {
			return nil, err
		}
		// Cheapest unvisited target, ties broken by live-node order.
		var best graph.NodeId
		bestDist, have := 0.0, false
		for _, id := range g.NodeIds() {
			if visited[id] {
				continue
			}
			d, ok := res.Dist[id]
			if !ok {
				continue
			}
			if fd := float64(d); !have || fd < bestDist {
				best, bestDist, have = id, fd, true
			}
		}
		if !have {
			return nil, kerr.New(kerr.NoPath, "tsp_nearest_neighbor: unreachable nodes remain from %s", current)
		}

		segment, _ := res.PathTo(best)
		for _, id := range segment[1:] {
			tour = append(tour, id)
			visited[id] = true
		}
		total += bestDist
		current = best
	}

	// Close the cycle if the start is reachable from the last stop.
	if current != start {
		res, err := path.Dijkstra(g, current)
		if err != nil {
			return nil, err
		}
		if d, ok := res.Dist[start]; ok {
			segment, _ := res.PathTo(start)
			tour = append(tour, segment[1:]...)
			total += float64(d)
		}
	}
	return &Tour{Nodes: tour, Cost: total}, nil
}

// TSPChristofides is a deliberate placeholder: the 1.5-approximation needs
// a minimum-weight perfect matching on the odd-degree MST vertices, which
// this module does not implement. Kept as an explicit NotImplemented so
// callers distinguish "not yet built" from a silent nearest-neighbor
// fallback.
func TSPChristofides[A any, W graph.Weight](g *graph.Graph[A, W], start graph.NodeId) (*Tour, error) {
	return nil, kerr.New(kerr.NotImplemented, "tsp_christofides")
}

// TSPSimulatedAnnealing is a deliberate placeholder: it returns a
// NotImplemented error rather than an unrefined initial cycle dressed up as
// an annealed one.
func TSPSimulatedAnnealing[A any, W graph.Weight](g *graph.Graph[A, W], start graph.NodeId, seed int64) (*Tour, error) {
	return nil, kerr.New(kerr.NotImplemented, "tsp_simulated_annealing")
}
