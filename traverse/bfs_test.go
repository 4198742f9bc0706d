package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/traverse"
)

// buildChain creates an undirected chain of n nodes: 0-1-2-...-(n-1).
func buildChain(n int) (*graph.Graph[int, int64], []graph.NodeId) {
	g := graph.NewUndirected[int, int64]()
	ids := make([]graph.NodeId, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddNode(i)
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(ids[i], ids[i+1], 1)
	}
	return g, ids
}

func TestBFS_ChainDepths(t *testing.T) {
	g, ids := buildChain(5)
	res, err := traverse.BFS(g, ids[0])
	require.NoError(t, err)
	for i, id := range ids {
		assert.Equal(t, i, res.Depth[id])
	}
	assert.Equal(t, ids, res.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	g, ids := buildChain(5)
	res, err := traverse.BFS(g, ids[0], traverse.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
	_, ok := res.Depth[ids[4]]
	assert.False(t, ok)
}

func TestBFS_PathTo(t *testing.T) {
	g, ids := buildChain(4)
	res, err := traverse.BFS(g, ids[0])
	require.NoError(t, err)
	path, ok := res.PathTo(ids[0], ids[3])
	require.True(t, ok)
	assert.Equal(t, ids, path)
}

func TestBFS_UnknownStart(t *testing.T) {
	g, _ := buildChain(3)
	res, err := traverse.BFS(g, graph.NodeId{})
	require.NoError(t, err)
	assert.Empty(t, res.Order)
}

func TestBidirectionalBFS_MeetsInMiddle(t *testing.T) {
	g, ids := buildChain(6)
	path, ok := traverse.BidirectionalBFS(g, ids[0], ids[5])
	require.True(t, ok)
	assert.Equal(t, ids, path)
}

func TestBidirectionalBFS_SameNode(t *testing.T) {
	g, ids := buildChain(3)
	path, ok := traverse.BidirectionalBFS(g, ids[1], ids[1])
	require.True(t, ok)
	assert.Equal(t, []graph.NodeId{ids[1]}, path)
}
