package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/mst"
)

// buildWeightedSquare builds a 4-cycle with one diagonal, so the MST must
// drop the heaviest edge while keeping the graph connected.
func buildWeightedSquare() (*graph.Graph[string, int64], map[string]graph.NodeId) {
	g := graph.NewUndirected[string, int64]()
	ids := map[string]graph.NodeId{}
	for _, n := range []string{"A", "B", "C", "D"} {
		ids[n] = g.AddNode(n)
	}
	g.AddEdge(ids["A"], ids["B"], 1)
	g.AddEdge(ids["B"], ids["C"], 2)
	g.AddEdge(ids["C"], ids["D"], 3)
	g.AddEdge(ids["D"], ids["A"], 4)
	g.AddEdge(ids["A"], ids["C"], 10)
	return g, ids
}

func totalWeight(edges []graph.MstEdge[int64]) int64 {
	var sum int64
	for _, e := range edges {
		sum += e.Weight
	}
	return sum
}

func TestKruskal_MinimumWeightAndSize(t *testing.T) {
	g, _ := buildWeightedSquare()
	forest := mst.Kruskal(g)
	assert.Len(t, forest, 3)
	assert.Equal(t, int64(6), totalWeight(forest))
}

func TestPrim_MatchesKruskalWeight(t *testing.T) {
	g, _ := buildWeightedSquare()
	assert.Equal(t, totalWeight(mst.Kruskal(g)), totalWeight(mst.Prim(g)))
}

func TestPrim_ForestOverDisconnectedGraph(t *testing.T) {
	g, ids := buildWeightedSquare()
	isolatedA := g.AddNode("E")
	isolatedB := g.AddNode("F")
	g.AddEdge(isolatedA, isolatedB, 7)
	forest := mst.Prim(g)
	// 4 nodes -> 3 tree edges, plus the 2-node second component -> 1 edge.
	assert.Len(t, forest, 4)
	_ = ids
}
