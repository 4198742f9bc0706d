// Package gmatrix provides dense and sparse (CSR) adjacency-matrix
// projections, plus round-trip conversion back to a graph.Graph: a
// deterministic iteration order, an explicit unreachable sentinel
// (graph.Option's zero value, rather than a hand-rolled +Inf/0 convention),
// and a thin wrapper type pairing the raw matrix with the vertex-index
// mapping needed to read it back.
package gmatrix

import "github.com/kestrelgraph/kestrel/graph"

// Dense is an n x n adjacency-matrix projection. Order[i] is the NodeId
// corresponding to row/column i, fixed by the Graph's Nodes() iteration
// order at the time of projection.
type Dense[W graph.Weight] struct {
	Order []graph.NodeId
	Cells [][]graph.Option[W]
}

// N returns the matrix's dimension.
func (d Dense[W]) N() int { return len(d.Order) }

// ToAdjacencyMatrix projects g into an n x n dense matrix where row i
// corresponds to the i-th node in Nodes() order. Undirected graphs yield a
// symmetric matrix; directed graphs write only (i, j) for each edge i->j.
// Parallel edges leave the last-written weight in the cell: last-write-wins
// composes trivially with MapEdgeWeights-style transforms without needing a
// stable "first" notion.
func ToAdjacencyMatrix[A any, W graph.Weight](g *graph.Graph[A, W]) Dense[W] {
	order := g.NodeIds()
	idx := make(map[graph.NodeId]int, len(order))
	for i, id := range order {
		idx[id] = i
	}
	n := len(order)
	cells := make([][]graph.Option[W], n)
	for i := range cells {
		cells[i] = make([]graph.Option[W], n)
	}
	for _, e := range g.Edges() {
		i, j := idx[e.Src], idx[e.Tgt]
		cells[i][j] = graph.Some(e.Weight)
		if !g.IsDirected() {
			cells[j][i] = graph.Some(e.Weight)
		}
	}
	return Dense[W]{Order: order, Cells: cells}
}

// FromAdjacencyMatrix builds a fresh graph from a dense matrix: one node per
// row (attribute supplied by zeroAttr for every node, since the dense form
// carries no node payload), and one edge per non-empty cell. For undirected
// graphs only the upper triangle (i <= j) is read, since the matrix is
// expected to be symmetric; self-loops (i == j) are still honored once.
func FromAdjacencyMatrix[A any, W graph.Weight](cells [][]graph.Option[W], dir graph.Direction, zeroAttr A) *graph.Graph[A, W] {
	n := len(cells)
	g := graph.WithCapacity[A, W](dir, n, 0)
	ids := make([]graph.NodeId, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddNode(zeroAttr)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if dir == graph.Undirected && j < i {
				continue
			}
			if w, ok := cells[i][j].Get(); ok {
				g.AddEdge(ids[i], ids[j], w)
			}
		}
	}
	return g
}
