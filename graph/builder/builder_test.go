package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/graph/builder"
)

func TestBuilder_StagesAndMaterializes(t *testing.T) {
	b := builder.New[string, int64](graph.Undirected)
	a := b.AddNode("a")
	c := b.AddNode("b")
	b.AddEdge(a, c, 3)

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuilder_RejectsBadIndex(t *testing.T) {
	b := builder.New[string, int64](graph.Undirected)
	b.AddNode("a")
	b.AddEdge(0, 5, 1)
	_, err := b.Build()
	assert.Error(t, err)
}

func TestBuilder_SelfLoopPolicy(t *testing.T) {
	b := builder.New[string, int64](graph.Undirected).AllowSelfLoops(false)
	i := b.AddNode("a")
	b.AddEdge(i, i, 1)
	_, err := b.Build()
	assert.Error(t, err)

	// Default policy allows it.
	b2 := builder.New[string, int64](graph.Undirected)
	j := b2.AddNode("a")
	b2.AddEdge(j, j, 1)
	g, err := b2.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuilder_ParallelEdgePolicy(t *testing.T) {
	b := builder.New[string, int64](graph.Undirected).AllowParallelEdges(false)
	u := b.AddNode("u")
	v := b.AddNode("v")
	b.AddEdge(u, v, 1)
	b.AddEdge(v, u, 2) // same undirected pair
	_, err := b.Build()
	assert.Error(t, err)
}

func TestComplete_EdgeCount(t *testing.T) {
	g, err := builder.Complete(5, "n", int64(1))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 10, g.EdgeCount())
}

func TestCycle_SingleCycle(t *testing.T) {
	g, err := builder.Cycle(4, 0, int64(1))
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	for _, id := range g.NodeIds() {
		d, _ := g.Degree(id)
		assert.Equal(t, 2, d)
	}
}

func TestPath_ZeroNodesAllowed(t *testing.T) {
	g, err := builder.Path(0, 0, int64(1))
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())

	g, err = builder.Path(4, 0, int64(1))
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestStar_HubDegree(t *testing.T) {
	g, err := builder.Star(6, 0, int64(1))
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())
	hub := g.NodeIds()[0]
	d, _ := g.Degree(hub)
	assert.Equal(t, 5, d)
}

func TestGrid_LatticeShape(t *testing.T) {
	g, err := builder.Grid(3, 4, 0, int64(1))
	require.NoError(t, err)
	assert.Equal(t, 12, g.NodeCount())
	// 3 rows x 3 horizontal + 2 x 4 vertical = 17 edges.
	assert.Equal(t, 17, g.EdgeCount())
}

func TestWheel_Shape(t *testing.T) {
	g, err := builder.Wheel(6, 0, int64(1))
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 10, g.EdgeCount()) // 5 spokes + 5 rim
}

func TestBipartite_CompleteBipartite(t *testing.T) {
	g, err := builder.Bipartite(2, 3, 0, int64(1))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())
}

func TestRandomSparse_DeterministicGivenSeed(t *testing.T) {
	a, err := builder.RandomSparse(20, 0.3, 77, 0, int64(1))
	require.NoError(t, err)
	b, err := builder.RandomSparse(20, 0.3, 77, 0, int64(1))
	require.NoError(t, err)
	assert.Equal(t, a.EdgeCount(), b.EdgeCount())

	aEdges := make(map[[2]uint32]bool)
	for _, e := range a.Edges() {
		aEdges[[2]uint32{e.Src.Index(), e.Tgt.Index()}] = true
	}
	for _, e := range b.Edges() {
		assert.True(t, aEdges[[2]uint32{e.Src.Index(), e.Tgt.Index()}])
	}
}

func TestRandomRegular_DegreesUniform(t *testing.T) {
	g, err := builder.RandomRegular(10, 3, 5, 0, int64(1))
	require.NoError(t, err)
	for _, id := range g.NodeIds() {
		d, _ := g.Degree(id)
		assert.Equal(t, 3, d)
	}
}
