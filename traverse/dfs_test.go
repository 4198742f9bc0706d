package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/traverse"
)

func buildTwoComponents() (*graph.Graph[string, int64], []graph.NodeId) {
	g := graph.NewUndirected[string, int64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	d := g.AddNode("d")
	g.AddEdge(a, b, 1)
	g.AddEdge(c, d, 1)
	return g, []graph.NodeId{a, b, c, d}
}

func TestDFS_SingleComponent(t *testing.T) {
	g, ids := buildTwoComponents()
	res, err := traverse.DFS(g, ids[0])
	require.NoError(t, err)
	assert.ElementsMatch(t, []graph.NodeId{ids[0], ids[1]}, res.Order)
}

func TestFullDFS_CoversEveryComponent(t *testing.T) {
	g, ids := buildTwoComponents()
	res, err := traverse.FullDFS(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, ids, res.Order)
}

func TestIDDFS_FindsTargetAtExpectedDepth(t *testing.T) {
	g, ids := buildChain(6)
	res, found, err := traverse.IDDFS(g, ids[0], ids[3], 10)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, res.Depth[ids[3]])
}

func TestIDDFS_UnreachableWithinBound(t *testing.T) {
	g, ids := buildChain(6)
	_, found, err := traverse.IDDFS(g, ids[0], ids[5], 2)
	require.NoError(t, err)
	assert.False(t, found)
}
