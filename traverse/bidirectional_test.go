package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/kerr"
	"github.com/kestrelgraph/kestrel/traverse"
)

func TestBidirectionalBFS_DirectedUsesPredecessorsBackward(t *testing.T) {
	g := graph.NewDirected[int, int64]()
	ids := make([]graph.NodeId, 5)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	for i := 0; i < 4; i++ {
		g.AddEdge(ids[i], ids[i+1], 1)
	}
	path, ok := traverse.BidirectionalBFS(g, ids[0], ids[4])
	require.True(t, ok)
	assert.Equal(t, ids, path)

	// Against the arrows there is no path.
	_, ok = traverse.BidirectionalBFS(g, ids[4], ids[0])
	assert.False(t, ok)
}

func TestTryBidirectionalBFS_NoPath(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	_, err := traverse.TryBidirectionalBFS(g, a, b)
	assert.ErrorIs(t, err, kerr.ErrNoPath)
}

func TestTryIDDFS_SingleEdgePath(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	g.AddEdge(a, b, 1)

	path, err := traverse.TryIDDFS(g, a, b, 5)
	require.NoError(t, err)
	assert.Equal(t, []graph.NodeId{a, b}, path)
}

func TestTryIDDFS_ExhaustionIsNoPath(t *testing.T) {
	g, ids := buildChain(6)
	_, err := traverse.TryIDDFS(g, ids[0], ids[5], 2)
	assert.ErrorIs(t, err, kerr.ErrNoPath)
}
