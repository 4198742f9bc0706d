package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/path"
)

func TestFloydWarshall_AgreesWithDijkstra(t *testing.T) {
	g, ids := buildDiamond()
	ap := path.FloydWarshall(g)
	ridx := graph.Reindex(g)

	res, err := path.Dijkstra(g, ids["A"])
	require.NoError(t, err)

	aIdx := ridx.ToIndex[ids["A"]]
	for _, name := range []string{"B", "C", "D"} {
		dIdx := ridx.ToIndex[ids[name]]
		want, ok := res.Dist[ids[name]]
		require.True(t, ok)
		got, ok := ap.Dist[aIdx][dIdx].Get()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestJohnson_AgreesWithFloydWarshall(t *testing.T) {
	g, ids := buildDiamond()
	fw := path.FloydWarshall(g)
	jo, err := path.Johnson(g)
	require.NoError(t, err)
	require.NotNil(t, jo)

	ridx := graph.Reindex(g)
	for _, from := range []string{"A", "B", "C", "D"} {
		for _, to := range []string{"A", "B", "C", "D"} {
			i, j := ridx.ToIndex[ids[from]], ridx.ToIndex[ids[to]]
			fwD, fwOk := fw.Dist[i][j].Get()
			joD, joOk := jo.Dist[i][j].Get()
			require.Equal(t, fwOk, joOk)
			if fwOk {
				assert.Equal(t, fwD, joD)
			}
		}
	}
}

func TestBellmanFord_NegativeCycleDiscardsResult(t *testing.T) {
	g := graph.NewDirected[string, int64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, -3)
	g.AddEdge(c, a, 1)
	res, err := path.BellmanFord(g, a)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestJohnson_NegativeCycleDiscardsResult(t *testing.T) {
	g := graph.NewDirected[string, int64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, -2)
	g.AddEdge(b, a, 1)
	ap, err := path.Johnson(g)
	require.NoError(t, err)
	assert.Nil(t, ap)
}

func TestBellmanFord_MatchesDijkstraWhenNonNegative(t *testing.T) {
	g, ids := buildDiamond()
	bf, err := path.BellmanFord(g, ids["A"])
	require.NoError(t, err)
	dk, err := path.Dijkstra(g, ids["A"])
	require.NoError(t, err)
	assert.Equal(t, dk.Dist[ids["D"]], bf.Dist[ids["D"]])
}
