package mst

import (
	"sort"

	"github.com/kestrelgraph/kestrel/graph"
)

// unionFind is a path-compressing, union-by-rank disjoint-set structure
// over compact 0..n indices.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p, rank: make([]int, n)}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	return true
}

// Kruskal computes a minimum spanning forest of g by sorting all edges
// ascending and greedily accepting each one that joins two distinct
// components, grounded on prim_kruskal/kruskal.go's global-sort-plus-
// union-find structure.
func Kruskal[A any, W graph.Weight](g *graph.Graph[A, W]) []graph.MstEdge[W] {
	ridx := graph.Reindex(g)
	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	uf := newUnionFind(ridx.N())
	forest := make([]graph.MstEdge[W], 0, ridx.N())
	for _, e := range edges {
		i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
		if i == j {
			continue // self-loop can never belong to a spanning forest
		}
		if uf.union(i, j) {
			forest = append(forest, graph.MstEdge[W]{U: e.Src, V: e.Tgt, Weight: e.Weight})
		}
	}
	return forest
}
