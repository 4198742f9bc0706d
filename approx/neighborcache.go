package approx

import (
	"sort"

	"github.com/kestrelgraph/kestrel/graph"
)

// neighborCache snapshots a graph's undirected-projection adjacency into
// compact-index sets, so the greedy loops below test membership in O(1)
// instead of re-walking edge lists.
type neighborCache struct {
	ridx graph.Reindexed
	sets []map[int]bool
	deg  []int
}

func newNeighborCache[A any, W graph.Weight](g *graph.Graph[A, W]) *neighborCache {
	ridx := graph.Reindex(g)
	n := ridx.N()
	c := &neighborCache{ridx: ridx, sets: make([]map[int]bool, n), deg: make([]int, n)}
	for i := range c.sets {
		c.sets[i] = make(map[int]bool)
	}
	for _, e := range g.Edges() {
		i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
		if i == j {
			continue
		}
		c.sets[i][j] = true
		c.sets[j][i] = true
	}
	for i, s := range c.sets {
		c.deg[i] = len(s)
	}
	return c
}

func (c *neighborCache) n() int { return c.ridx.N() }

func (c *neighborCache) ids(indices []int) []graph.NodeId {
	out := make([]graph.NodeId, len(indices))
	for k, i := range indices {
		out[k] = c.ridx.ToID[i]
	}
	return out
}

// byDegreeAsc returns compact indices sorted by ascending cached degree,
// index ascending on ties (the deterministic orderings the greedy
// heuristics sort by).
func (c *neighborCache) byDegreeAsc() []int {
	order := make([]int, c.n())
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if c.deg[order[a]] != c.deg[order[b]] {
			return c.deg[order[a]] < c.deg[order[b]]
		}
		return order[a] < order[b]
	})
	return order
}

func (c *neighborCache) byDegreeDesc() []int {
	order := c.byDegreeAsc()
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}
