package parallel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/kestrel/centrality"
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/parallel"
	"github.com/kestrelgraph/kestrel/path"
)

func buildTwoTriangles() (*graph.Graph[int, float64], []graph.NodeId) {
	g := graph.NewUndirected[int, float64]()
	ids := make([]graph.NodeId, 6)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	g.AddEdge(ids[0], ids[1], 1)
	g.AddEdge(ids[1], ids[2], 1)
	g.AddEdge(ids[0], ids[2], 1)
	g.AddEdge(ids[3], ids[4], 1)
	g.AddEdge(ids[4], ids[5], 1)
	g.AddEdge(ids[3], ids[5], 1)
	return g, ids
}

func TestEccentricityAll_Chain(t *testing.T) {
	g := graph.NewUndirected[int, float64]()
	ids := make([]graph.NodeId, 5)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	for i := 0; i < 4; i++ {
		g.AddEdge(ids[i], ids[i+1], 1)
	}
	ecc, err := parallel.EccentricityAll(g, parallel.WithWorkers(3))
	require.NoError(t, err)
	assert.Equal(t, 4, ecc[ids[0]])
	assert.Equal(t, 2, ecc[ids[2]])
}

func TestDegreeAll_MatchesSequential(t *testing.T) {
	g, _ := buildTwoTriangles()
	deg := parallel.DegreeAll(g)
	for _, id := range g.NodeIds() {
		d, _ := g.Degree(id)
		assert.Equal(t, d, deg[id])
	}
}

func TestTrianglesAll_TwoTriangles(t *testing.T) {
	g, ids := buildTwoTriangles()
	tri := parallel.TrianglesAll(g)
	for _, id := range ids {
		assert.Equal(t, 1, tri[id])
	}
}

func TestClusteringAll_TriangleIsOne(t *testing.T) {
	g, ids := buildTwoTriangles()
	cc := parallel.ClusteringAll(g)
	for _, id := range ids {
		assert.InDelta(t, 1.0, cc[id], 1e-12)
	}
}

func TestShortestPathsFrom_MatchesSingleSource(t *testing.T) {
	g, ids := buildTwoTriangles()
	results, err := parallel.ShortestPathsFrom(g, ids[:3], parallel.WithWorkers(2))
	require.NoError(t, err)
	for _, src := range ids[:3] {
		seq, err := path.Dijkstra(g, src)
		require.NoError(t, err)
		assert.Equal(t, seq.Dist, results[src].Dist)
	}
}

func TestPageRank_MatchesSequential(t *testing.T) {
	g := graph.NewDirected[int, float64]()
	ids := make([]graph.NodeId, 5)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	g.AddEdge(ids[0], ids[1], 1)
	g.AddEdge(ids[1], ids[2], 1)
	g.AddEdge(ids[2], ids[0], 1)
	g.AddEdge(ids[2], ids[3], 1)
	g.AddEdge(ids[3], ids[4], 1)

	par, err := parallel.PageRank(g, parallel.WithWorkers(3))
	require.NoError(t, err)
	seq, err := centrality.PageRank(g)
	require.NoError(t, err)
	for _, id := range ids {
		assert.InDelta(t, seq[id], par[id], 1e-5)
	}
}

func TestComponents_DeterministicOrdering(t *testing.T) {
	g, ids := buildTwoTriangles()
	first := parallel.Components(g, parallel.WithWorkers(4))
	require.Len(t, first, 2)
	assert.Equal(t, []graph.NodeId{ids[0], ids[1], ids[2]}, first[0])
	assert.Equal(t, []graph.NodeId{ids[3], ids[4], ids[5]}, first[1])
	for i := 0; i < 5; i++ {
		again := parallel.Components(g, parallel.WithWorkers(4))
		assert.Equal(t, first, again)
	}
}
