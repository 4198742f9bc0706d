package gmatrix

import "github.com/kestrelgraph/kestrel/graph"

// Sparse is a CSR-like (compressed sparse row) adjacency projection: for row
// i, the non-empty column indices live in ColIdx[RowPtr[i]:RowPtr[i+1]] with
// matching weights in Values at the same offsets.
type Sparse[W graph.Weight] struct {
	Order  []graph.NodeId
	RowPtr []int
	ColIdx []int
	Values []W
}

// N returns the matrix's dimension.
func (s Sparse[W]) N() int { return len(s.Order) }

// ToSparseAdjacencyMatrix projects g into CSR form. Directed edges write
// (i, j) once; undirected edges write both (i, j) and (j, i) except
// self-loops, which are written once.
func ToSparseAdjacencyMatrix[A any, W graph.Weight](g *graph.Graph[A, W]) Sparse[W] {
	order := g.NodeIds()
	idx := make(map[graph.NodeId]int, len(order))
	for i, id := range order {
		idx[id] = i
	}
	n := len(order)

	type cell struct {
		col int
		w   W
	}
	rows := make([][]cell, n)
	for _, e := range g.Edges() {
		i, j := idx[e.Src], idx[e.Tgt]
		rows[i] = append(rows[i], cell{col: j, w: e.Weight})
		if !g.IsDirected() && i != j {
			rows[j] = append(rows[j], cell{col: i, w: e.Weight})
		}
	}

	rowPtr := make([]int, n+1)
	var colIdx []int
	var values []W
	for i := 0; i < n; i++ {
		rowPtr[i] = len(colIdx)
		for _, c := range rows[i] {
			colIdx = append(colIdx, c.col)
			values = append(values, c.w)
		}
	}
	rowPtr[n] = len(colIdx)

	return Sparse[W]{Order: order, RowPtr: rowPtr, ColIdx: colIdx, Values: values}
}

// AgreesWithDense reports whether s and d describe the same set of
// non-empty cells.
func (s Sparse[W]) AgreesWithDense(d Dense[W]) bool {
	if s.N() != d.N() {
		return false
	}
	n := s.N()
	seen := make(map[[2]int]bool)
	for i := 0; i < n; i++ {
		for k := s.RowPtr[i]; k < s.RowPtr[i+1]; k++ {
			seen[[2]int{i, s.ColIdx[k]}] = true
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_, dok := d.Cells[i][j].Get()
			if dok != seen[[2]int{i, j}] {
				return false
			}
		}
	}
	return true
}
