package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/kestrel/graph"
)

func TestAddRemoveEdge_CountsRoundTrip(t *testing.T) {
	g := graph.NewUndirected[string, int64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())

	eid := g.AddEdge(a, b, 5)
	assert.Equal(t, 1, g.EdgeCount())

	w, ok := g.RemoveEdge(eid)
	require.True(t, ok)
	assert.Equal(t, int64(5), w)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestUndirected_NeighborSymmetry(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	g.AddEdge(a, b, 1)

	assert.Contains(t, g.Neighbors(a), b)
	assert.Contains(t, g.Neighbors(b), a)
}

func TestDirected_OutgoingAndIncoming(t *testing.T) {
	g := graph.NewDirected[int, int64]()
	u := g.AddNode(1)
	v := g.AddNode(2)
	g.AddEdge(u, v, 1)

	assert.Contains(t, g.Neighbors(u), v)
	assert.NotContains(t, g.Neighbors(v), u)
	assert.Contains(t, g.IncomingNeighbors(v), u)
}

func TestRemoveNode_RemovesIncidentEdges(t *testing.T) {
	g := graph.NewUndirected[string, int64]()
	hub := g.AddNode("hub")
	others := make([]graph.NodeId, 3)
	for i := range others {
		others[i] = g.AddNode("leaf")
		g.AddEdge(hub, others[i], 1)
	}
	g.AddEdge(others[0], others[1], 1)
	require.Equal(t, 4, g.EdgeCount())

	attr, ok := g.RemoveNode(hub)
	require.True(t, ok)
	assert.Equal(t, "hub", attr)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestNodeId_NotReusedAfterRemoval(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	a := g.AddNode(1)
	_, ok := g.RemoveNode(a)
	require.True(t, ok)

	// The stale handle must stay invalid even after further inserts.
	g.AddNode(2)
	assert.False(t, g.ContainsNode(a))
	_, ok = g.NodeAttr(a)
	assert.False(t, ok)
}

func TestSelfLoop_DegreeCountsTwiceUndirected(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	a := g.AddNode(1)
	g.AddEdge(a, a, 1)
	d, ok := g.Degree(a)
	require.True(t, ok)
	assert.Equal(t, 2, d)
}

func TestDensity_K4(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	ids := make([]graph.NodeId, 4)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			g.AddEdge(ids[i], ids[j], 1)
		}
	}
	assert.InDelta(t, 1.0, g.Density(), 1e-12)
}

func TestDensity_DirectedK4(t *testing.T) {
	g := graph.NewDirected[int, int64]()
	ids := make([]graph.NodeId, 4)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j {
				g.AddEdge(ids[i], ids[j], 1)
			}
		}
	}
	assert.Equal(t, 12, g.EdgeCount())
	assert.InDelta(t, 1.0, g.Density(), 1e-12)
}

func TestDensity_TrivialGraphIsZero(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	assert.Equal(t, 0.0, g.Density())
	g.AddNode(1)
	assert.Equal(t, 0.0, g.Density())
}

func TestAddEdgeIfAbsent(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	a := g.AddNode(1)
	b := g.AddNode(2)

	first, inserted := g.AddEdgeIfAbsent(a, b, 1)
	require.True(t, inserted)
	// The reverse orientation matches the same undirected edge.
	second, inserted := g.AddEdgeIfAbsent(b, a, 9)
	assert.False(t, inserted)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestUpdateNodeAndTryVariants(t *testing.T) {
	g := graph.NewUndirected[string, int64]()
	a := g.AddNode("old")
	require.True(t, g.UpdateNode(a, "new"))
	attr, ok := g.NodeAttr(a)
	require.True(t, ok)
	assert.Equal(t, "new", attr)

	assert.NoError(t, g.TryUpdateNode(a, "newer"))
	assert.Error(t, g.TryUpdateNode(graph.NodeId{}, "x"))
	_, err := g.TryRemoveEdge(graph.EdgeId{})
	assert.Error(t, err)
}

func TestEdgeWeightMut(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	eid := g.AddEdge(a, b, 3)

	wp, ok := g.EdgeWeightMut(eid)
	require.True(t, ok)
	*wp = 7
	w, _ := g.EdgeWeight(eid)
	assert.Equal(t, int64(7), w)
}

func TestClone_IsDeep(t *testing.T) {
	g := graph.NewUndirected[string, int64]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b, 2)

	clone := g.Clone()
	require.Equal(t, 2, clone.NodeCount())
	require.Equal(t, 1, clone.EdgeCount())

	// Mutating the original leaves the clone untouched.
	g.UpdateNode(a, "changed")
	attrs := make(map[string]bool)
	for _, n := range clone.Nodes() {
		attrs[n.Attr] = true
	}
	assert.True(t, attrs["a"])
	assert.False(t, attrs["changed"])
}

func TestMapNodeAttrs_TransformsPayloads(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	g.AddEdge(a, b, 1)

	doubled := graph.MapNodeAttrs(g, func(_ graph.NodeId, v int) int { return v * 2 })
	var sum int
	for _, n := range doubled.Nodes() {
		sum += n.Attr
	}
	assert.Equal(t, 6, sum)
	assert.Equal(t, 1, doubled.EdgeCount())
}

func TestRetainNodes_DropsIncidentEdges(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	ids := make([]graph.NodeId, 4)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	for i := 0; i < 3; i++ {
		g.AddEdge(ids[i], ids[i+1], 1)
	}
	g.RetainNodes(func(_ graph.NodeId, v int) bool { return v%2 == 0 })
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestClear(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	g.AddEdge(a, b, 1)
	g.Clear()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestEdgesYieldEachEdgeOnce(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	g.AddEdge(a, b, 1)
	g.AddEdge(a, b, 2) // parallel edge, still one entry each
	assert.Len(t, g.Edges(), 2)
}

func TestReindex_CompactAfterRemovals(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	ids := make([]graph.NodeId, 5)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	g.RemoveNode(ids[1])
	g.RemoveNode(ids[3])

	ridx := graph.Reindex(g)
	assert.Equal(t, 3, ridx.N())
	seen := make(map[int]bool)
	for _, id := range g.NodeIds() {
		idx, ok := ridx.ToIndex[id]
		require.True(t, ok)
		assert.False(t, seen[idx])
		seen[idx] = true
		assert.Less(t, idx, 3)
	}
}

func TestOrderedNodeMap_DeterministicIteration(t *testing.T) {
	g := graph.NewUndirected[int, int64]()
	ids := make([]graph.NodeId, 4)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	m := graph.NewOrderedNodeMap[int]()
	for i := len(ids) - 1; i >= 0; i-- {
		m.Set(ids[i], i*10)
	}
	var order []graph.NodeId
	m.Range(func(id graph.NodeId, _ int) bool {
		order = append(order, id)
		return true
	})
	assert.Equal(t, ids, order)

	v, ok := m.Get(ids[2])
	require.True(t, ok)
	assert.Equal(t, 20, v)
}
