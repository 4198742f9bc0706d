package community

import (
	"github.com/kestrelgraph/kestrel/centrality"
	"github.com/kestrelgraph/kestrel/graph"
)

// PersonalizedPageRank runs the PageRank iteration with teleport mass
// concentrated on the supplied distribution instead of spread uniformly:
// restarts land on the personalization nodes, so scores measure proximity
// to that seed set. The distribution is normalized internally; an empty or
// all-zero map degrades to ordinary PageRank.
func PersonalizedPageRank[A any, W graph.Weight](g *graph.Graph[A, W], personalization graph.NodeMap[float64], opts ...centrality.PageRankOption) (graph.NodeMap[float64], error) {
	merged := append([]centrality.PageRankOption{centrality.WithTeleport(personalization)}, opts...)
	return centrality.PageRank(g, merged...)
}
