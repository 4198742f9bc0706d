package centrality_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/kestrel/centrality"
	"github.com/kestrelgraph/kestrel/graph"
)

func buildTriangle() (*graph.Graph[int, float64], []graph.NodeId) {
	g := graph.NewUndirected[int, float64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	c := g.AddNode(3)
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.AddEdge(a, c, 1)
	return g, []graph.NodeId{a, b, c}
}

func buildPath3() (*graph.Graph[int, float64], []graph.NodeId) {
	g := graph.NewUndirected[int, float64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	c := g.AddNode(3)
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	return g, []graph.NodeId{a, b, c}
}

func TestDegree_SelfLoopCountsTwice(t *testing.T) {
	g := graph.NewUndirected[int, float64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	g.AddEdge(a, b, 1)
	g.AddEdge(a, a, 1)
	scores, err := centrality.Degree(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, scores[a])
	assert.Equal(t, 1.0, scores[b])
}

func TestDegree_EmptyGraph(t *testing.T) {
	g := graph.NewUndirected[int, float64]()
	_, err := centrality.Degree(g)
	assert.Error(t, err)
}

func TestCloseness_Path(t *testing.T) {
	g, ids := buildPath3()
	scores, err := centrality.Closeness(g)
	require.NoError(t, err)
	// Middle node: 1/1 + 1/1 = 2. Endpoints: 1/1 + 1/2 = 1.5.
	assert.InDelta(t, 2.0, scores[ids[1]], 1e-12)
	assert.InDelta(t, 1.5, scores[ids[0]], 1e-12)
	assert.InDelta(t, 1.5, scores[ids[2]], 1e-12)
}

func TestPageRank_DirectedCycleIsUniform(t *testing.T) {
	g := graph.NewDirected[int, float64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	c := g.AddNode(3)
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.AddEdge(c, a, 1)

	scores, err := centrality.PageRank(g)
	require.NoError(t, err)
	var sum float64
	for _, v := range scores {
		sum += v
		assert.InDelta(t, 1.0/3.0, v, 1e-5)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestPageRank_DanglingNodeMassRedistributed(t *testing.T) {
	g := graph.NewDirected[int, float64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	g.AddEdge(a, b, 1)

	scores, err := centrality.PageRank(g)
	require.NoError(t, err)
	var sum float64
	for _, v := range scores {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, scores[b], scores[a])
}

func TestBetweenness_TriangleAllZero(t *testing.T) {
	g, ids := buildTriangle()
	scores, err := centrality.Betweenness(g)
	require.NoError(t, err)
	for _, id := range ids {
		assert.InDelta(t, 0.0, scores[id], 1e-12)
	}
}

func TestBetweenness_PathMiddleIsOne(t *testing.T) {
	g, ids := buildPath3()
	scores, err := centrality.Betweenness(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores[ids[1]], 1e-12)
	assert.InDelta(t, 0.0, scores[ids[0]], 1e-12)
	assert.InDelta(t, 0.0, scores[ids[2]], 1e-12)
}

func TestBetweenness_LeafOfTreeIsZero(t *testing.T) {
	g := graph.NewUndirected[int, float64]()
	root := g.AddNode(0)
	l1 := g.AddNode(1)
	l2 := g.AddNode(2)
	leaf := g.AddNode(3)
	g.AddEdge(root, l1, 1)
	g.AddEdge(root, l2, 1)
	g.AddEdge(l1, leaf, 1)

	scores, err := centrality.Betweenness(g)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, scores[leaf], 1e-12)
	assert.InDelta(t, 0.0, scores[l2], 1e-12)
	assert.Greater(t, scores[root], 0.0)
}

func TestEdgeBetweenness_PathEdges(t *testing.T) {
	g, ids := buildPath3()
	scores, err := centrality.EdgeBetweenness(g)
	require.NoError(t, err)
	// Each edge of a 3-path carries 2 of the 3 unordered pairs.
	key := centrality.EdgeKey{U: ids[0], V: ids[1]}
	if _, ok := scores[key]; !ok {
		key = centrality.EdgeKey{U: ids[1], V: ids[0]}
	}
	assert.InDelta(t, 2.0, scores[key], 1e-12)
}

func TestEigenvector_EmptyGraphYieldsEmptyMap(t *testing.T) {
	g := graph.NewUndirected[int, float64]()
	scores, err := centrality.Eigenvector(g)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestEigenvector_ZeroEdgeGraphIsUniform(t *testing.T) {
	g := graph.NewUndirected[int, float64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	scores, err := centrality.Eigenvector(g)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, scores[a], 1e-12)
	assert.InDelta(t, 0.5, scores[b], 1e-12)
}

func TestEigenvector_TriangleSymmetric(t *testing.T) {
	g, ids := buildTriangle()
	scores, err := centrality.Eigenvector(g)
	require.NoError(t, err)
	var sum float64
	for _, id := range ids {
		assert.InDelta(t, 1.0, scores[id], 1e-9)
		sum += scores[id]
	}
	assert.InDelta(t, 3.0, sum, 1e-9)
}

func TestEigenvector_DirectedCycleUniform(t *testing.T) {
	g := graph.NewDirected[int, float64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	c := g.AddNode(3)
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	g.AddEdge(c, a, 1)
	scores, err := centrality.Eigenvector(g)
	require.NoError(t, err)
	for _, v := range scores {
		assert.InDelta(t, 1.0, v, 1e-6)
	}
}

func TestKatz_StarHubHighest(t *testing.T) {
	g := graph.NewUndirected[int, float64]()
	hub := g.AddNode(0)
	leaves := make([]graph.NodeId, 4)
	for i := range leaves {
		leaves[i] = g.AddNode(i + 1)
		g.AddEdge(hub, leaves[i], 1)
	}
	scores, err := centrality.Katz(g)
	require.NoError(t, err)
	for _, leaf := range leaves {
		assert.Greater(t, scores[hub], scores[leaf])
	}
}

func TestKatz_PerNodeBeta(t *testing.T) {
	g, ids := buildTriangle()
	scores, err := centrality.Katz(g, centrality.WithBetaFn(func(id graph.NodeId) float64 {
		if id == ids[0] {
			return 2
		}
		return 1
	}))
	require.NoError(t, err)
	assert.Greater(t, scores[ids[0]], scores[ids[1]])
}

func TestKatz_DivergentAlphaErrors(t *testing.T) {
	g, _ := buildTriangle()
	// alpha 0.9 is far above the triangle's 1/lambda_max = 0.5.
	_, err := centrality.Katz(g, centrality.WithAlpha(0.9), centrality.WithKatzMaxIter(50))
	assert.Error(t, err)
}

func TestLocalReaching_DirectedStar(t *testing.T) {
	g := graph.NewDirected[int, float64]()
	hub := g.AddNode(0)
	leaves := make([]graph.NodeId, 3)
	for i := range leaves {
		leaves[i] = g.AddNode(i + 1)
		g.AddEdge(hub, leaves[i], 1)
	}
	scores, err := centrality.LocalReaching(g, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores[hub], 1e-12)
	for _, leaf := range leaves {
		assert.InDelta(t, 0.0, scores[leaf], 1e-12)
	}

	grc, err := centrality.GlobalReaching(g, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, grc, 1e-12)
}

func TestVoteRank_StarPicksHubFirst(t *testing.T) {
	g := graph.NewUndirected[int, float64]()
	hub := g.AddNode(0)
	for i := 0; i < 5; i++ {
		leaf := g.AddNode(i + 1)
		g.AddEdge(hub, leaf, 1)
	}
	seeds, err := centrality.VoteRank(g, 1)
	require.NoError(t, err)
	require.Len(t, seeds, 1)
	assert.Equal(t, hub, seeds[0])
}

func TestLaplacian_HigherDegreeScoresHigher(t *testing.T) {
	g, ids := buildPath3()
	scores, err := centrality.Laplacian(g)
	require.NoError(t, err)
	assert.Greater(t, scores[ids[1]], scores[ids[0]])
}

func TestPageRank_SumIsOneOnArbitraryGraph(t *testing.T) {
	g := graph.NewDirected[int, float64]()
	ids := make([]graph.NodeId, 6)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	g.AddEdge(ids[0], ids[1], 2)
	g.AddEdge(ids[1], ids[2], 1)
	g.AddEdge(ids[2], ids[0], 1)
	g.AddEdge(ids[2], ids[3], 3)
	g.AddEdge(ids[4], ids[3], 1)

	scores, err := centrality.PageRank(g)
	require.NoError(t, err)
	var sum float64
	for _, v := range scores {
		sum += v
	}
	assert.False(t, math.IsNaN(sum))
	assert.InDelta(t, 1.0, sum, 1e-9)
}
