package approx

import (
	"sort"

	"github.com/kestrelgraph/kestrel/graph"
)

// MaxClique greedily grows a clique from every seed node — extending by the
// highest-degree candidate still adjacent to every current member — and
// returns the largest clique found across all seeds. Purely heuristic: the
// true maximum clique may be larger.
func MaxClique[A any, W graph.Weight](g *graph.Graph[A, W]) []graph.NodeId {
	c := newNeighborCache(g)
	alive := make(map[int]bool, c.n())
	for i := 0; i < c.n(); i++ {
		alive[i] = true
	}
	best := maxCliqueIn(c, alive)
	return c.ids(best)
}

// maxCliqueIn runs the per-seed greedy extension restricted to the alive
// set, returning compact indices of the best clique.
func maxCliqueIn(c *neighborCache, alive map[int]bool) []int {
	var best []int
	seeds := make([]int, 0, len(alive))
	for i := range alive {
		seeds = append(seeds, i)
	}
	sort.Ints(seeds)

	for _, seed := range seeds {
		clique := []int{seed}
		// Candidates: alive neighbors of the seed, tried richest-first.
		cands := make([]int, 0, len(c.sets[seed]))
		for v := range c.sets[seed] {
			if alive[v] {
				cands = append(cands, v)
			}
		}
		sort.Slice(cands, func(a, b int) bool {
			if c.deg[cands[a]] != c.deg[cands[b]] {
				return c.deg[cands[a]] > c.deg[cands[b]]
			}
			return cands[a] < cands[b]
		})

		for _, v := range cands {
			ok := true
			for _, member := range clique {
				if !c.sets[v][member] {
					ok = false
					break
				}
			}
			if ok {
				clique = append(clique, v)
			}
		}
		if len(clique) > len(best) {
			best = clique
		}
	}
	return best
}

// CliqueRemoval repeatedly extracts a greedy maximum clique and deletes its
// nodes from the residual universe until no node remains, yielding a clique
// cover (largest cliques first, by construction order).
func CliqueRemoval[A any, W graph.Weight](g *graph.Graph[A, W]) [][]graph.NodeId {
	c := newNeighborCache(g)
	alive := make(map[int]bool, c.n())
	for i := 0; i < c.n(); i++ {
		alive[i] = true
	}

	var cover [][]graph.NodeId
	for len(alive) > 0 {
		clique := maxCliqueIn(c, alive)
		if len(clique) == 0 {
			break
		}
		for _, v := range clique {
			delete(alive, v)
		}
		cover = append(cover, c.ids(clique))
	}
	return cover
}

// MaxIndependentSet accepts nodes in ascending-degree order, skipping any
// node adjacent to an already accepted one.
func MaxIndependentSet[A any, W graph.Weight](g *graph.Graph[A, W]) []graph.NodeId {
	c := newNeighborCache(g)
	inSet := make(map[int]bool)
	var result []int
	for _, u := range c.byDegreeAsc() {
		ok := true
		for v := range c.sets[u] {
			if inSet[v] {
				ok = false
				break
			}
		}
		if ok {
			inSet[u] = true
			result = append(result, u)
		}
	}
	sort.Ints(result)
	return c.ids(result)
}

// RamseyR2 returns a clique and an independent set found by the recursive
// Ramsey R(2) argument: pick a pivot, recurse into its neighborhood (which
// extends the clique) and its non-neighborhood (which extends the
// independent set), and keep the larger of each.
func RamseyR2[A any, W graph.Weight](g *graph.Graph[A, W]) (clique, independent []graph.NodeId) {
	c := newNeighborCache(g)
	universe := make([]int, c.n())
	for i := range universe {
		universe[i] = i
	}
	cl, iset := ramsey(c, universe)
	sort.Ints(cl)
	sort.Ints(iset)
	return c.ids(cl), c.ids(iset)
}

func ramsey(c *neighborCache, universe []int) (clique, independent []int) {
	if len(universe) == 0 {
		return nil, nil
	}
	pivot := universe[0]
	var nbrs, rest []int
	for _, v := range universe[1:] {
		if c.sets[pivot][v] {
			nbrs = append(nbrs, v)
		} else {
			rest = append(rest, v)
		}
	}

	c1, i1 := ramsey(c, nbrs)
	c2, i2 := ramsey(c, rest)

	c1 = append(c1, pivot) // pivot is adjacent to everything in nbrs
	i2 = append(i2, pivot) // pivot is non-adjacent to everything in rest

	clique = c1
	if len(c2) > len(c1) {
		clique = c2
	}
	independent = i2
	if len(i1) > len(i2) {
		independent = i1
	}
	return clique, independent
}
