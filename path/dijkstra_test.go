package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/path"
)

// buildDiamond builds A -> B -> D (cost 1+1) and A -> C -> D (cost 1+5), so
// the shortest A->D path goes through B.
func buildDiamond() (*graph.Graph[string, int64], map[string]graph.NodeId) {
	g := graph.NewDirected[string, int64]()
	ids := map[string]graph.NodeId{}
	for _, name := range []string{"A", "B", "C", "D"} {
		ids[name] = g.AddNode(name)
	}
	g.AddEdge(ids["A"], ids["B"], 1)
	g.AddEdge(ids["B"], ids["D"], 1)
	g.AddEdge(ids["A"], ids["C"], 1)
	g.AddEdge(ids["C"], ids["D"], 5)
	return g, ids
}

func TestDijkstra_ShortestPathThroughB(t *testing.T) {
	g, ids := buildDiamond()
	res, err := path.Dijkstra(g, ids["A"])
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Dist[ids["D"]])
	p, ok := res.PathTo(ids["D"])
	require.True(t, ok)
	assert.Equal(t, []graph.NodeId{ids["A"], ids["B"], ids["D"]}, p)
}

func TestDijkstra_UnreachableNode(t *testing.T) {
	g, ids := buildDiamond()
	isolated := g.AddNode("isolated")
	res, err := path.Dijkstra(g, ids["A"])
	require.NoError(t, err)
	_, ok := res.Dist[isolated]
	assert.False(t, ok)
}

func TestDijkstra_RejectsNegativeWeights(t *testing.T) {
	g, ids := buildDiamond()
	g.AddEdge(ids["D"], ids["A"], -1)
	_, err := path.Dijkstra(g, ids["A"])
	assert.Error(t, err)
}

func TestAStar_ZeroHeuristicMatchesDijkstra(t *testing.T) {
	g, ids := buildDiamond()
	res, found, err := path.AStar[string, int64](g, ids["A"], ids["D"], func(graph.NodeId) float64 { return 0 })
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(2), res.Dist[ids["D"]])
}
