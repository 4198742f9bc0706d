package parallel

import (
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/kestrelgraph/kestrel/graph"
)

// Components computes weakly-connected components with a parallel
// label-merge: edge-list blocks are scanned concurrently, each worker folding
// the edges it sees into a shared union-find under a lock, and the final
// component list is ordered by each component's earliest member in
// live-node order — an external ordering, so component indices are
// identical across runs regardless of worker scheduling.
func Components[A any, W graph.Weight](g *graph.Graph[A, W], opts ...Option) [][]graph.NodeId {
	o := resolve(opts)
	ridx := graph.Reindex(g)
	n := ridx.N()
	if n == 0 {
		return nil
	}

	uf := newUnionFind(n)
	var mu sync.Mutex

	edges := g.Edges()
	blocks := o.Workers
	if blocks > len(edges) {
		blocks = len(edges)
	}
	if blocks < 1 {
		blocks = 1
	}
	var eg errgroup.Group
	for b := 0; b < blocks; b++ {
		lo := b * len(edges) / blocks
		hi := (b + 1) * len(edges) / blocks
		eg.Go(func() error {
			for _, e := range edges[lo:hi] {
				i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
				mu.Lock()
				uf.union(i, j)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = eg.Wait()

	// Group by root, then order every component (and the members inside it)
	// by live-node rank so the output is deterministic.
	groups := make(map[int][]int)
	for i := 0; i < n; i++ {
		root := uf.find(i)
		groups[root] = append(groups[root], i)
	}
	roots := make([]int, 0, len(groups))
	for root := range groups {
		roots = append(roots, root)
	}
	sort.Slice(roots, func(a, b int) bool {
		return groups[roots[a]][0] < groups[roots[b]][0]
	})

	out := make([][]graph.NodeId, 0, len(roots))
	for _, root := range roots {
		members := groups[root]
		sort.Ints(members)
		ids := make([]graph.NodeId, len(members))
		for k, m := range members {
			ids[k] = ridx.ToID[m]
		}
		out = append(out, ids)
	}
	return out
}

type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), size: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.size[ra] < u.size[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	u.size[ra] += u.size[rb]
}
