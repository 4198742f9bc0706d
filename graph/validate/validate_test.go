package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/graph/validate"
)

func TestIsConnected_DirectedUsesUndirectedAdjacency(t *testing.T) {
	g := graph.NewDirected[int, int64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	g.AddEdge(a, b, 1) // not strongly connected, but weakly so
	assert.True(t, validate.IsConnected(g))
}

func TestCountComponents_TwoDisjointEdges(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	c := g.AddNode(3)
	d := g.AddNode(4)
	g.AddEdge(a, b, 1)
	g.AddEdge(c, d, 1)
	assert.Equal(t, 2, validate.CountComponents(g))
}

func TestHasNegativeWeights(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	g.AddEdge(a, b, -1)
	assert.True(t, validate.HasNegativeWeights(g))
}

func TestIsDAG(t *testing.T) {
	g := graph.NewDirected[int, int64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	c := g.AddNode(3)
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)
	assert.True(t, validate.IsDAG(g))

	g.AddEdge(c, a, 1)
	assert.False(t, validate.IsDAG(g))

	// Undirected graphs with any edge are never a DAG.
	u := graph.NewUndirected[int, int64]()
	x := u.AddNode(1)
	y := u.AddNode(2)
	assert.True(t, validate.IsDAG(u))
	u.AddEdge(x, y, 1)
	assert.False(t, validate.IsDAG(u))
}

func TestIsBipartite(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	ids := make([]graph.NodeId, 4)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	// 4-cycle: bipartite.
	for i := 0; i < 4; i++ {
		g.AddEdge(ids[i], ids[(i+1)%4], 1)
	}
	assert.True(t, validate.IsBipartite(g))

	// Adding a chord makes an odd cycle.
	g.AddEdge(ids[0], ids[2], 1)
	assert.False(t, validate.IsBipartite(g))
}

func TestHasSelfLoops(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	a := g.AddNode(1)
	assert.False(t, validate.HasSelfLoops(g))
	g.AddEdge(a, a, 1)
	assert.True(t, validate.HasSelfLoops(g))
}

func TestValidateForAlgorithm(t *testing.T) {
	empty := graph.NewUndirected[int, int64]()
	assert.Error(t, validate.ValidateForAlgorithm(empty, "dijkstra"))

	g := graph.NewUndirected[int, int64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	g.AddEdge(a, b, 1)
	assert.NoError(t, validate.ValidateForAlgorithm(g, "dijkstra"))

	g.AddNode(3) // disconnects
	assert.Error(t, validate.ValidateForAlgorithm(g, "dijkstra"))
}
