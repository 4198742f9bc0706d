package centrality

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/kerr"
)

// Scores is a per-node result, the common return shape for every measure in
// this package.
type Scores = graph.NodeMap[float64]

func requireNonEmpty[A any, W graph.Weight](g *graph.Graph[A, W], who string) error {
	if g.NodeCount() == 0 {
		return kerr.New(kerr.InvalidGraph, "%s: graph is empty", who)
	}
	return nil
}

// Degree returns total degree centrality: raw incident-edge counts, with a
// self-loop counting twice on an undirected graph.
func Degree[A any, W graph.Weight](g *graph.Graph[A, W]) (Scores, error) {
	if err := requireNonEmpty(g, "degree_centrality"); err != nil {
		return nil, err
	}
	out := make(Scores, g.NodeCount())
	for _, id := range g.NodeIds() {
		d, _ := g.Degree(id)
		out[id] = float64(d)
	}
	return out, nil
}

// InDegree returns in-degree centrality (identical to Degree for undirected
// graphs, since there is no predecessor/successor distinction).
func InDegree[A any, W graph.Weight](g *graph.Graph[A, W]) (Scores, error) {
	if err := requireNonEmpty(g, "in_degree_centrality"); err != nil {
		return nil, err
	}
	out := make(Scores, g.NodeCount())
	for _, id := range g.NodeIds() {
		d, _ := g.InDegree(id)
		out[id] = float64(d)
	}
	return out, nil
}

// OutDegree returns out-degree centrality.
func OutDegree[A any, W graph.Weight](g *graph.Graph[A, W]) (Scores, error) {
	if err := requireNonEmpty(g, "out_degree_centrality"); err != nil {
		return nil, err
	}
	out := make(Scores, g.NodeCount())
	for _, id := range g.NodeIds() {
		d, _ := g.OutDegree(id)
		out[id] = float64(d)
	}
	return out, nil
}

// Laplacian computes the local-approximation Laplacian centrality
// deg(u)^2 + 2*deg(u): the drop in Laplacian energy when u is removed,
// approximated by its own degree terms only.
func Laplacian[A any, W graph.Weight](g *graph.Graph[A, W]) (Scores, error) {
	if err := requireNonEmpty(g, "laplacian_centrality"); err != nil {
		return nil, err
	}
	out := make(Scores, g.NodeCount())
	for _, id := range g.NodeIds() {
		d, _ := g.Degree(id)
		fd := float64(d)
		out[id] = fd*fd + 2*fd
	}
	return out, nil
}
