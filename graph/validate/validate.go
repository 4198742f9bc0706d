// Package validate implements read-only structural predicates and their
// typed-error wrappers: emptiness, connectivity, bipartiteness, DAG check,
// negative-weight scan, and component count.
package validate

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/kerr"
)

// IsEmpty reports whether g has no nodes.
func IsEmpty[A any, W graph.Weight](g *graph.Graph[A, W]) bool {
	return g.NodeCount() == 0
}

// IsConnected reports whether g is connected, using the undirected
// projection even for directed graphs.
func IsConnected[A any, W graph.Weight](g *graph.Graph[A, W]) bool {
	ids := g.NodeIds()
	if len(ids) == 0 {
		return true
	}
	reached := g.ConnectedComponent(ids[0])
	return len(reached) == len(ids)
}

// HasNegativeWeights reports whether any edge weight projects to a negative
// float64.
func HasNegativeWeights[A any, W graph.Weight](g *graph.Graph[A, W]) bool {
	for _, e := range g.Edges() {
		if float64(e.Weight) < 0 {
			return true
		}
	}
	return false
}

// HasSelfLoops reports whether any edge has equal endpoints.
func HasSelfLoops[A any, W graph.Weight](g *graph.Graph[A, W]) bool {
	for _, e := range g.Edges() {
		if e.Src == e.Tgt {
			return true
		}
	}
	return false
}

// IsDAG reports whether a directed graph is acyclic via Kahn's algorithm
// (three-color DFS would work equally; Kahn's is used here since it doubles
// as the topological-order producer traverse-package callers want).
// Undirected graphs containing any edge are never a DAG; an edgeless
// undirected graph reports true (vacuously acyclic).
func IsDAG[A any, W graph.Weight](g *graph.Graph[A, W]) bool {
	if !g.IsDirected() {
		return g.EdgeCount() == 0
	}
	ids := g.NodeIds()
	indeg := make(map[graph.NodeId]int, len(ids))
	for _, id := range ids {
		d, _ := g.InDegree(id)
		indeg[id] = d
	}
	queue := make([]graph.NodeId, 0, len(ids))
	for _, id := range ids {
		if indeg[id] == 0 {
			queue = append(queue, id)
		}
	}
	visited := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		visited++
		for _, v := range g.Neighbors(u) {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}
	return visited == len(ids)
}

// IsBipartite reports whether g admits a proper 2-coloring, checked via BFS
// over each connected component.
func IsBipartite[A any, W graph.Weight](g *graph.Graph[A, W]) bool {
	color := make(map[graph.NodeId]int)
	for _, n := range g.Nodes() {
		if _, seen := color[n.ID]; seen {
			continue
		}
		color[n.ID] = 0
		queue := []graph.NodeId{n.ID}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range g.Neighbors(u) {
				if u == v {
					return false // a self-loop can never be 2-colored
				}
				if c, seen := color[v]; seen {
					if c == color[u] {
						return false
					}
					continue
				}
				color[v] = 1 - color[u]
				queue = append(queue, v)
			}
		}
	}
	return true
}

// CountComponents returns the number of weakly-connected components.
func CountComponents[A any, W graph.Weight](g *graph.Graph[A, W]) int {
	seen := make(map[graph.NodeId]bool)
	count := 0
	for _, n := range g.Nodes() {
		if seen[n.ID] {
			continue
		}
		count++
		for _, id := range g.ConnectedComponent(n.ID) {
			seen[id] = true
		}
	}
	return count
}

// ValidateForAlgorithm composes the non-empty + connected + non-negative-
// weight checks into the shared precondition bundle for algorithms like
// Dijkstra/A*/centrality that require a well-formed input.
func ValidateForAlgorithm[A any, W graph.Weight](g *graph.Graph[A, W], algoName string) error {
	if IsEmpty(g) {
		return kerr.New(kerr.InvalidGraph, "%s: graph is empty", algoName)
	}
	if !IsConnected(g) {
		return kerr.New(kerr.InvalidGraph, "%s: graph is not connected", algoName)
	}
	if HasNegativeWeights(g) {
		return kerr.New(kerr.InvalidGraph, "%s: graph has negative edge weights", algoName)
	}
	return nil
}
