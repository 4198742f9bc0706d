package community

import (
	"github.com/kestrelgraph/kestrel/graph"
)

// ConnectedComponents returns the weakly-connected components of g, one
// slice of NodeIds per component, in live-node iteration order. The scan is
// linear in nodes + edges: each BFS walks Neighbors (and predecessors, for
// directed inputs) of the dequeued node only, and NodeIds with gaps from
// past removals are handled by keying visited state on the handle itself.
func ConnectedComponents[A any, W graph.Weight](g *graph.Graph[A, W]) [][]graph.NodeId {
	visited := make(map[graph.NodeId]bool, g.NodeCount())
	var components [][]graph.NodeId

	for _, id := range g.NodeIds() {
		if visited[id] {
			continue
		}
		visited[id] = true
		component := []graph.NodeId{id}
		queue := []graph.NodeId{id}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			neighbors := g.Neighbors(u)
			if g.IsDirected() {
				neighbors = append(append([]graph.NodeId(nil), neighbors...), g.IncomingNeighbors(u)...)
			}
			for _, v := range neighbors {
				if visited[v] {
					continue
				}
				visited[v] = true
				component = append(component, v)
				queue = append(queue, v)
			}
		}
		components = append(components, component)
	}
	return components
}
